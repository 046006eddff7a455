package seeder

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"os"
	"time"

	DB "Backend-Gatherly/src/database"
	"Backend-Gatherly/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// SeedMember participant + user ที่ต้องการ seed
type SeedMember struct {
	Email string
	Role  string
	Name  string
	Code  string
}

// GeneratedPassword เก็บ email กับรหัสผ่านที่สุ่มให้
type GeneratedPassword struct {
	Email    string
	Password string
	Role     string
}

// generateRandomPassword สร้างรหัสผ่านแบบสุ่ม
func generateRandomPassword(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*"
	password := make([]byte, length)

	for i := range password {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		password[i] = charset[num.Int64()]
	}

	return string(password), nil
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// SeedDemoTenant สร้าง tenant ตัวอย่างพร้อม participants / users / gathering
// idempotent: ถ้ามี tenant ชื่อนี้อยู่แล้วจะข้ามทั้งหมด
func SeedDemoTenant() ([]GeneratedPassword, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var existing models.Tenant
	err := DB.TenantCollection.FindOne(ctx, bson.M{"name": "Demo Org"}).Decode(&existing)
	if err == nil {
		log.Println("⏭️  Demo tenant already exists, skipping seed")
		return nil, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("error checking demo tenant: %v", err)
	}

	log.Println("🌱 Starting seed process...")

	tenant := models.Tenant{
		Name:             "Demo Org",
		UTCOffsetMinutes: models.DefaultUTCOffsetMinutes,
		LateGraceMinutes: models.DefaultLateGraceMinutes,
		StrictMode:       false,
		Active:           true,
	}
	res, err := DB.TenantCollection.InsertOne(ctx, tenant)
	if err != nil {
		return nil, fmt.Errorf("error creating demo tenant: %v", err)
	}
	tenantID := res.InsertedID.(primitive.ObjectID)
	log.Println("✅ Created demo tenant:", tenantID.Hex())

	members := []SeedMember{
		{Email: "owner@demo.gatherly.app", Role: models.RoleOwner, Name: "Owner Demo", Code: "EMP-0001"},
		{Email: "somchai@demo.gatherly.app", Role: models.RoleMember, Name: "Somchai J.", Code: "EMP-0002"},
		{Email: "kanda@demo.gatherly.app", Role: models.RoleMember, Name: "Kanda P.", Code: "EMP-0003"},
		{Email: "arthit@demo.gatherly.app", Role: models.RoleMember, Name: "Arthit S.", Code: "EMP-0004"},
	}

	var generatedPasswords []GeneratedPassword
	var roster []models.RosterEntry

	for _, member := range members {
		participant := models.Participant{
			TenantID: tenantID,
			Code:     member.Code,
			Name:     member.Name,
			Email:    member.Email,
			Role:     member.Role,
			Active:   true,
		}
		pRes, err := DB.ParticipantCollection.InsertOne(ctx, participant)
		if err != nil {
			return nil, fmt.Errorf("error creating participant %s: %v", member.Email, err)
		}
		refID := pRes.InsertedID.(primitive.ObjectID)

		plainPassword, err := generateRandomPassword(12)
		if err != nil {
			return nil, fmt.Errorf("error generating password for %s: %v", member.Email, err)
		}
		hashedPassword, err := hashPassword(plainPassword)
		if err != nil {
			return nil, fmt.Errorf("error hashing password for %s: %v", member.Email, err)
		}

		user := models.User{
			TenantID: tenantID,
			Email:    member.Email,
			Password: hashedPassword,
			Role:     member.Role,
			RefID:    refID,
		}
		if _, err := DB.UserCollection.InsertOne(ctx, user); err != nil {
			return nil, fmt.Errorf("error creating user %s: %v", member.Email, err)
		}
		log.Printf("✅ Created user: %s (Role: %s)", member.Email, member.Role)

		generatedPasswords = append(generatedPasswords, GeneratedPassword{
			Email:    member.Email,
			Password: plainPassword,
			Role:     member.Role,
		})

		if member.Role == models.RoleMember {
			roster = append(roster, models.RosterEntry{
				ParticipantID: refID,
				Mode:          models.LocationPhysical,
			})
		}
	}

	endDate := "2026-12-31"
	gathering := models.Gathering{
		TenantID:       tenantID,
		Name:           "Morning Standup",
		RecurrenceKind: models.RecurrenceWeekly,
		StartDate:      time.Now().UTC().Format("2006-01-02"),
		EndDate:        &endDate,
		StartTime:      "09:00",
		EndTime:        "09:30",
		WeeklyDays:     []int{1, 2, 3, 4, 5},
		LocationMode:   models.LocationPhysical,
		Location:       &models.GeoPoint{Lat: 13.2827, Lng: 100.9256},
		RadiusMeters:   models.DefaultGeofenceRadius,
		Roster:         roster,
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}
	if _, err := DB.GatheringCollection.InsertOne(ctx, gathering); err != nil {
		return nil, fmt.Errorf("error creating demo gathering: %v", err)
	}
	log.Println("✅ Created demo gathering: Morning Standup")

	return generatedPasswords, nil
}

// PrintGeneratedPasswords แสดงรหัสผ่านที่สร้างขึ้น
func PrintGeneratedPasswords(passwords []GeneratedPassword) {
	if len(passwords) == 0 {
		log.Println("ℹ️  No new users were created")
		return
	}

	log.Println("\n" + "═══════════════════════════════════════════════════════════════")
	log.Println("🔐 GENERATED PASSWORDS FOR SEEDED USERS")
	log.Println("═══════════════════════════════════════════════════════════════")
	log.Println("⚠️  IMPORTANT: Save these passwords securely!")
	log.Println("⚠️  These passwords are hashed in the database and cannot be retrieved again.")
	log.Println("───────────────────────────────────────────────────────────────")

	for _, p := range passwords {
		log.Printf("📧 Email:    %s", p.Email)
		log.Printf("🔑 Password: %s", p.Password)
		log.Printf("👤 Role:     %s", p.Role)
		log.Println("───────────────────────────────────────────────────────────────")
	}

	log.Println("═══════════════════════════════════════════════════════════════")
}

// SavePasswordsToFile บันทึกรหัสผ่านที่สร้างไว้ลงไฟล์ (truncate)
func SavePasswordsToFile(passwords []GeneratedPassword, filePath string) error {
	if len(passwords) == 0 {
		return nil
	}

	header := fmt.Sprintf("Generated user credentials - %s\n", time.Now().Format(time.RFC3339))
	var body string
	for _, p := range passwords {
		body += fmt.Sprintf("Email: %s\nRole: %s\nPassword: %s\n------------------------\n", p.Email, p.Role, p.Password)
	}

	if err := os.WriteFile(filePath, []byte(header+"\n"+body), 0640); err != nil {
		return fmt.Errorf("failed to write passwords to file %s: %w", filePath, err)
	}
	log.Printf("🔐 Saved generated passwords to %s", filePath)
	return nil
}
