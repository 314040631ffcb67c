package main

import (
	"harvest/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.ListingModel{},
		model.DemandModel{},
		model.MatchModel{},
		model.OrderModel{},
		model.NotificationModel{},
		model.DeviceModel{},
		model.AddressModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
