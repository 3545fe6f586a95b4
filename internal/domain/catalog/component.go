package catalog

// Category classifies a bicycle component
type Category string

const (
	CategoryWheelset  Category = "wheelset"
	CategoryFrame     Category = "frame"
	CategoryHandlebar Category = "handlebar"
	CategorySaddle    Category = "saddle"
	CategoryGear      Category = "gear"
	CategoryMotor     Category = "motor"
)

// AllCategories returns every component category in assembly order
func AllCategories() []Category {
	return []Category{
		CategoryWheelset,
		CategoryFrame,
		CategoryHandlebar,
		CategorySaddle,
		CategoryGear,
		CategoryMotor,
	}
}

// IsValid checks if the category is a known value
func (c Category) IsValid() bool {
	switch c {
	case CategoryWheelset, CategoryFrame, CategoryHandlebar, CategorySaddle, CategoryGear, CategoryMotor:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// Component is a purchasable bicycle part
type Component struct {
	name      string
	category  Category
	footprint float64
}

// NewComponent creates a component with its storage footprint in space units
func NewComponent(name string, category Category, footprint float64) *Component {
	return &Component{name: name, category: category, footprint: footprint}
}

func (c *Component) Name() string {
	return c.name
}

func (c *Component) Category() Category {
	return c.category
}

// Footprint returns the storage space one unit occupies
func (c *Component) Footprint() float64 {
	return c.footprint
}
