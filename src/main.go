package main

import (
	_ "Backend-Gatherly/docs"
	"Backend-Gatherly/src/database"
	"Backend-Gatherly/src/jobs"
	"Backend-Gatherly/src/routes"
	"Backend-Gatherly/src/seeder"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

func main() {

	// เชื่อมต่อกับ MongoDB
	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}
	database.InitCollections()
	database.EnsureAttendanceIndexes()

	// Redis + Asynq สำหรับ background reconcile
	database.InitRedis()
	database.InitAsynq()
	jobs.StartWorker()
	jobs.StartScheduler()

	// seed ข้อมูลตัวอย่างเมื่อสั่งผ่าน env
	if os.Getenv("SEED_DEMO") == "true" {
		passwords, err := seeder.SeedDemoTenant()
		if err != nil {
			log.Fatalf("Error seeding demo data: %v", err)
		}
		seeder.PrintGeneratedPasswords(passwords)
		if path := os.Getenv("SEED_PASSWORD_FILE"); path != "" {
			if err := seeder.SavePasswordsToFile(passwords, path); err != nil {
				log.Println("⚠️", err)
			}
		}
	}

	// สร้าง app instance
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false, // ❌ ต้องเป็น false ถ้าใช้ "*"
	}))

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// รวม routes จากแต่ละ module
	routes.InitRoutes(app)

	// get url from .env
	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8888" // ใช้ 8888 เป็นค่าเริ่มต้น
	}

	// เริ่มเซิร์ฟเวอร์
	log.Println("Server is running on port " + appURI)
	err = app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI)))
	if err != nil {
		log.Fatal(err)
	}

}
