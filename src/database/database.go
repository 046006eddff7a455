package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client     *mongo.Client
	once       sync.Once // ✅ ป้องกันการรัน ConnectMongoDB() ซ้ำ
	connectErr error

	TenantCollection      *mongo.Collection
	ParticipantCollection *mongo.Collection
	GatheringCollection   *mongo.Collection
	AttendanceCollection  *mongo.Collection
	LeaveCollection       *mongo.Collection
	UserCollection        *mongo.Collection
)

// DBName ฐานข้อมูลเดียว ทุก tenant ใช้ร่วมกัน (แยกด้วย tenantId ในทุก document)
const DBName = "GatherlyDB"

// ConnectMongoDB เชื่อมต่อกับ MongoDB แค่ครั้งเดียว
func ConnectMongoDB() error {

	// โหลดค่า Environment Variables จากไฟล์ .env
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() { // ✅ Run only once
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		log.Println("✅ MongoDB connected successfully")
	})

	return connectErr
}

// InitCollections ผูกตัวแปร collection หลักทั้งหมดหลังเชื่อมต่อสำเร็จ
func InitCollections() {
	TenantCollection = GetCollection(DBName, "tenants")
	ParticipantCollection = GetCollection(DBName, "participants")
	GatheringCollection = GetCollection(DBName, "gatherings")
	AttendanceCollection = GetCollection(DBName, "attendances")
	LeaveCollection = GetCollection(DBName, "leaveRequests")
	UserCollection = GetCollection(DBName, "users")
}

// GetCollection รับ Collection จาก MongoDB
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}

// EnsureAttendanceIndexes สร้าง unique index กันเช็คชื่อซ้ำใน occurrence เดียวกัน
// (insert-if-absent guard ระดับ storage สำหรับ request ที่ยิงพร้อมกัน)
func EnsureAttendanceIndexes() error {
	if AttendanceCollection == nil {
		return nil
	}
	_, err := AttendanceCollection.Indexes().CreateOne(context.TODO(), mongo.IndexModel{
		Keys: bson.D{
			{Key: "tenantId", Value: 1},
			{Key: "gatheringId", Value: 1},
			{Key: "participantId", Value: 1},
			{Key: "occurrenceDate", Value: 1},
		},
		Options: options.Index().
			SetName("uniq_natural_checkin").
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"forced": false}),
	})
	if err != nil {
		log.Println("⚠️ Failed to create attendance unique index:", err)
	}
	return err
}
