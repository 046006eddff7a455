package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	DB "Backend-Gatherly/src/database"
	"Backend-Gatherly/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// AuthenticateUser ตรวจ email/password แล้วคืน user พร้อมชื่อจาก participant profile
func AuthenticateUser(email, password string) (*models.User, error) {
	ctx := context.Background()

	var dbUser models.User
	err := DB.UserCollection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&dbUser)
	if err != nil {
		return nil, errors.New("Invalid email or password")
	}

	// ตรวจสอบ password
	if err := bcrypt.CompareHashAndPassword([]byte(dbUser.Password), []byte(password)); err != nil {
		return nil, errors.New("Invalid password")
	}

	result := &models.User{
		ID:       dbUser.ID,
		TenantID: dbUser.TenantID,
		Email:    dbUser.Email,
		Role:     dbUser.Role,
		RefID:    dbUser.RefID,
	}

	// 🔍 ดึง name จาก participant profile
	var participant models.Participant
	if err := DB.ParticipantCollection.FindOne(ctx, bson.M{"_id": dbUser.RefID}).Decode(&participant); err == nil {
		result.Name = participant.Name
	}

	return result, nil
}

// GetUserByID โหลด user ตาม id (ใช้ตอน refresh token)
func GetUserByID(userID string) (*models.User, error) {
	uID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("รหัสผู้ใช้ไม่ถูกต้อง")
	}

	var user models.User
	if err := DB.UserCollection.FindOne(context.Background(), bson.M{"_id": uID}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

const (
	maxLoginAttempts = 5
	loginCooldown    = 10 * time.Minute
)

// IsRateLimited เช็คว่า email นี้ login ผิดเกินโควตาหรือยัง (ใช้ Redis, ไม่มี Redis = ไม่จำกัด)
func IsRateLimited(email string) bool {
	if DB.RedisClient == nil {
		return false
	}
	key := fmt.Sprintf("login_attempts:%s", strings.ToLower(email))
	count, err := DB.RedisClient.Get(DB.RedisCtx, key).Int()
	if err != nil {
		return false
	}
	return count >= maxLoginAttempts
}

// GetRemainingCooldownTime เวลาที่เหลือก่อน login ได้อีกครั้ง
func GetRemainingCooldownTime(email string) time.Duration {
	if DB.RedisClient == nil {
		return 0
	}
	key := fmt.Sprintf("login_attempts:%s", strings.ToLower(email))
	ttl, err := DB.RedisClient.TTL(DB.RedisCtx, key).Result()
	if err != nil || ttl < 0 {
		return 0
	}
	return ttl
}

// LogLoginAttempt นับครั้งที่ login พลาด / ล้างตัวนับเมื่อสำเร็จ
func LogLoginAttempt(email, ip string, success bool) {
	if DB.RedisClient == nil {
		return
	}
	key := fmt.Sprintf("login_attempts:%s", strings.ToLower(email))
	if success {
		DB.RedisClient.Del(DB.RedisCtx, key)
		return
	}
	count, _ := DB.RedisClient.Incr(DB.RedisCtx, key).Result()
	if count == 1 {
		DB.RedisClient.Expire(DB.RedisCtx, key, loginCooldown)
	}
}

// HashPassword สร้าง bcrypt hash สำหรับเก็บใน users collection
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
