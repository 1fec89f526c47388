// Command seed loads the default salon menu into the configured database.
package main

import (
	"context"
	"flag"
	"time"

	"chairbook/config"
	"chairbook/database"
	appointmentRepo "chairbook/database/repository/appointment"
	productRepo "chairbook/database/repository/product"
	serviceRepo "chairbook/database/repository/service"
	"chairbook/models"
	"chairbook/services/catalog"
	"chairbook/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

var defaultServices = []models.Service{
	{ServiceName: "Haircut", Description: "Consultation, wash and cut", Duration: 45, Price: 35},
	{ServiceName: "Beard Trim", Description: "Shape and line-up", Duration: 15, Price: 15},
	{ServiceName: "Blowout", Description: "Wash and blow-dry styling", Duration: 30, Price: 30},
	{ServiceName: "Color", Description: "Single-process color", Duration: 90, Price: 85},
	{ServiceName: "Highlights", Description: "Partial foil highlights", Duration: 120, Price: 120},
	{ServiceName: "Deep Conditioning", Description: "Moisture treatment", Duration: 20, Price: 25},
}

var defaultProducts = []models.Product{
	{ProductName: "Styling Pomade", Description: "Medium hold, matte finish", Price: 18},
	{ProductName: "Hydrating Shampoo", Description: "Sulfate-free, 250ml", Price: 22},
	{ProductName: "Leave-in Conditioner", Description: "Detangling spray, 150ml", Price: 20},
}

func main() {
	reset := flag.Bool("reset", false, "delete existing services and products before seeding")
	flag.Parse()

	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if err := database.InitDB(logger); err != nil {
		logger.Fatal("seed: database unavailable", zap.Error(err))
	}
	db := database.DB()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer database.Disconnect(ctx)

	if *reset {
		for _, name := range []string{"services", "products"} {
			res, err := db.Collection(name).DeleteMany(ctx, bson.M{})
			if err != nil {
				logger.Fatal("seed: failed to clear collection", zap.String("collection", name), zap.Error(err))
			}
			logger.Info("cleared collection", zap.String("collection", name), zap.Int64("deleted", res.DeletedCount))
		}
	}

	svc := &catalog.Service{
		Services:     serviceRepo.NewMongoServiceRepo(db, logger),
		Products:     productRepo.NewMongoProductRepo(db, logger),
		Appointments: appointmentRepo.NewMongoAppointmentRepo(db, logger),
	}

	for _, s := range defaultServices {
		created, err := svc.CreateService(ctx, s)
		if err != nil {
			logger.Fatal("seed: failed to create service", zap.String("service", s.ServiceName), zap.Error(err))
		}
		logger.Info("created service", zap.String("id", created.ID), zap.String("name", created.ServiceName), zap.Int("duration", created.Duration))
	}
	for _, p := range defaultProducts {
		created, err := svc.CreateProduct(ctx, p)
		if err != nil {
			logger.Fatal("seed: failed to create product", zap.String("product", p.ProductName), zap.Error(err))
		}
		logger.Info("created product", zap.String("id", created.ID), zap.String("name", created.ProductName))
	}

	logger.Info("seed complete", zap.Int("services", len(defaultServices)), zap.Int("products", len(defaultProducts)))
}
