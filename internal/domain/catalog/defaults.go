package catalog

import "github.com/shopspring/decimal"

// Component names
const (
	WheelsAlpin    = "laufradsatz_alpin"
	WheelsAmpere   = "laufradsatz_ampere"
	WheelsSpeed    = "laufradsatz_speed"
	WheelsStandard = "laufradsatz_standard"
	FrameHerren    = "rahmen_herren"
	FrameDamen     = "rahmen_damen"
	FrameMountain  = "rahmen_mountain"
	FrameRenn      = "rahmen_renn"
	BarComfort     = "lenker_comfort"
	BarSport       = "lenker_sport"
	SaddleComfort  = "sattel_comfort"
	SaddleSport    = "sattel_sport"
	GearAlbatross  = "schaltung_albatross"
	GearGepard     = "schaltung_gepard"
	MotorStandard  = "motor_standard"
	MotorMountain  = "motor_mountain"
)

// Bicycle model names
const (
	ModelDamenrad      = "damenrad"
	ModelEBike         = "e_bike"
	ModelEMountainbike = "e_mountainbike"
	ModelHerrenrad     = "herrenrad"
	ModelMountainbike  = "mountainbike"
	ModelRennrad       = "rennrad"
)

// Supplier names
const (
	SupplierVelotech  = "velotech_supplies"
	SupplierBikeparts = "bikeparts_pro"
	SupplierRadxpert  = "radxpert"
	SupplierCyclocomp = "cyclocomp"
	SupplierPedal     = "pedal_power_parts"
	SupplierGearshift = "gearshift_wholesale"
)

// Market names
const (
	MarketMuenster = "muenster"
	MarketToulouse = "toulouse"
)

// Default builds the standard game catalog
func Default() *Catalog {
	return NewCatalog(defaultComponents(), defaultBicycles(), defaultSuppliers(), defaultMarkets())
}

func defaultComponents() []*Component {
	return []*Component{
		NewComponent(WheelsAlpin, CategoryWheelset, 0.1),
		NewComponent(WheelsAmpere, CategoryWheelset, 0.1),
		NewComponent(WheelsSpeed, CategoryWheelset, 0.1),
		NewComponent(WheelsStandard, CategoryWheelset, 0.1),
		NewComponent(FrameHerren, CategoryFrame, 0.2),
		NewComponent(FrameDamen, CategoryFrame, 0.2),
		NewComponent(FrameMountain, CategoryFrame, 0.2),
		NewComponent(FrameRenn, CategoryFrame, 0.2),
		NewComponent(BarComfort, CategoryHandlebar, 0.005),
		NewComponent(BarSport, CategoryHandlebar, 0.005),
		NewComponent(SaddleComfort, CategorySaddle, 0.001),
		NewComponent(SaddleSport, CategorySaddle, 0.001),
		NewComponent(GearAlbatross, CategoryGear, 0.001),
		NewComponent(GearGepard, CategoryGear, 0.001),
		NewComponent(MotorStandard, CategoryMotor, 0.05),
		NewComponent(MotorMountain, CategoryMotor, 0.05),
	}
}

func defaultBicycles() []*Bicycle {
	price := func(v int64) decimal.Decimal { return decimal.NewFromInt(v) }
	return []*Bicycle{
		NewBicycle(ModelRennrad, map[Category]string{
			CategoryWheelset:  WheelsSpeed,
			CategoryHandlebar: BarSport,
			CategoryFrame:     FrameRenn,
			CategorySaddle:    SaddleSport,
			CategoryGear:      GearGepard,
		}, 0.5, 1.3, 0.5, price(900)),
		NewBicycle(ModelHerrenrad, map[Category]string{
			CategoryWheelset:  WheelsStandard,
			CategoryHandlebar: BarComfort,
			CategoryFrame:     FrameHerren,
			CategorySaddle:    SaddleComfort,
			CategoryGear:      GearAlbatross,
		}, 0.3, 2.0, 0.5, price(550)),
		NewBicycle(ModelDamenrad, map[Category]string{
			CategoryWheelset:  WheelsStandard,
			CategoryHandlebar: BarComfort,
			CategoryFrame:     FrameDamen,
			CategorySaddle:    SaddleComfort,
			CategoryGear:      GearAlbatross,
		}, 0.3, 2.0, 0.5, price(550)),
		NewBicycle(ModelMountainbike, map[Category]string{
			CategoryWheelset:  WheelsAlpin,
			CategoryHandlebar: BarSport,
			CategoryFrame:     FrameMountain,
			CategorySaddle:    SaddleSport,
			CategoryGear:      GearGepard,
		}, 0.7, 1.3, 0.6, price(850)),
		NewBicycle(ModelEMountainbike, map[Category]string{
			CategoryWheelset:  WheelsAlpin,
			CategoryHandlebar: BarSport,
			CategoryFrame:     FrameMountain,
			CategorySaddle:    SaddleSport,
			CategoryGear:      GearGepard,
			CategoryMotor:     MotorStandard,
		}, 1.0, 1.5, 0.6, price(1500)),
		NewBicycle(ModelEBike, map[Category]string{
			CategoryWheelset:  WheelsAmpere,
			CategoryHandlebar: BarComfort,
			CategoryFrame:     FrameHerren,
			CategorySaddle:    SaddleComfort,
			CategoryGear:      GearAlbatross,
			CategoryMotor:     MotorStandard,
		}, 0.8, 1.5, 0.6, price(1200)),
	}
}

func defaultSuppliers() []*Supplier {
	price := func(v int64) decimal.Decimal { return decimal.NewFromInt(v) }
	return []*Supplier{
		NewSupplier(SupplierVelotech, 30, 30, 0.095, 0.18, map[string]decimal.Decimal{
			WheelsAlpin:    price(180),
			WheelsAmpere:   price(220),
			WheelsSpeed:    price(250),
			WheelsStandard: price(150),
			FrameHerren:    price(104),
			FrameDamen:     price(107),
			FrameMountain:  price(145),
			FrameRenn:      price(130),
			BarComfort:     price(40),
			BarSport:       price(60),
			SaddleComfort:  price(50),
			SaddleSport:    price(70),
			GearAlbatross:  price(130),
			GearGepard:     price(180),
			MotorStandard:  price(400),
			MotorMountain:  price(600),
		}),
		NewSupplier(SupplierBikeparts, 30, 30, 0.07, 0.15, map[string]decimal.Decimal{
			WheelsAlpin:    price(200),
			WheelsAmpere:   price(240),
			WheelsSpeed:    price(280),
			WheelsStandard: price(170),
			FrameHerren:    price(115),
			FrameDamen:     price(120),
			FrameMountain:  price(160),
			FrameRenn:      price(145),
			BarComfort:     price(50),
			BarSport:       price(70),
			SaddleComfort:  price(60),
			SaddleSport:    price(80),
			GearAlbatross:  price(150),
			GearGepard:     price(200),
			MotorStandard:  price(450),
			MotorMountain:  price(650),
		}),
		NewSupplier(SupplierRadxpert, 30, 30, 0.12, 0.25, map[string]decimal.Decimal{
			WheelsAlpin:    price(170),
			WheelsAmpere:   price(210),
			WheelsSpeed:    price(230),
			WheelsStandard: price(140),
			FrameHerren:    price(95),
			FrameDamen:     price(100),
			FrameMountain:  price(135),
			FrameRenn:      price(120),
		}),
		NewSupplier(SupplierCyclocomp, 30, 30, 0.18, 0.3, map[string]decimal.Decimal{
			WheelsAlpin:    price(160),
			WheelsAmpere:   price(200),
			WheelsSpeed:    price(220),
			WheelsStandard: price(130),
			FrameHerren:    price(90),
			FrameDamen:     price(95),
			FrameMountain:  price(120),
			FrameRenn:      price(110),
			BarComfort:     price(30),
			BarSport:       price(45),
			SaddleComfort:  price(40),
			SaddleSport:    price(55),
			GearAlbatross:  price(110),
			GearGepard:     price(150),
			MotorStandard:  price(350),
			MotorMountain:  price(500),
		}),
		NewSupplier(SupplierPedal, 30, 30, 0.105, 0.2, map[string]decimal.Decimal{
			GearAlbatross: price(125),
			GearGepard:    price(175),
			MotorStandard: price(390),
			MotorMountain: price(580),
		}),
		NewSupplier(SupplierGearshift, 30, 30, 0.145, 0.27, map[string]decimal.Decimal{
			BarComfort:    price(35),
			BarSport:      price(55),
			SaddleComfort: price(45),
			SaddleSport:   price(65),
		}),
	}
}

func defaultMarkets() []*Market {
	standardWeights := map[QualityTier]float64{
		TierBudget:   1.1,
		TierStandard: 1.0,
		TierPremium:  0.8,
	}
	premiumWeights := map[QualityTier]float64{
		TierBudget:   0.9,
		TierStandard: 1.0,
		TierPremium:  1.2,
	}
	return []*Market{
		NewMarket(MarketMuenster, "germany", map[string]float64{
			ModelHerrenrad:     0.3,
			ModelDamenrad:      0.3,
			ModelEBike:         0.2,
			ModelEMountainbike: 0.05,
			ModelMountainbike:  0.05,
			ModelRennrad:       0.1,
		}, standardWeights, 1.0),
		NewMarket(MarketToulouse, "france", map[string]float64{
			ModelHerrenrad:     0.05,
			ModelDamenrad:      0.05,
			ModelEBike:         0.1,
			ModelEMountainbike: 0.3,
			ModelMountainbike:  0.2,
			ModelRennrad:       0.3,
		}, premiumWeights, 1.1),
	}
}
