package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret   string
	ResultsFile string

	accessTokenExpireMinutes int
)

const accessTokenExpireMinutesDefault = 30

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
	} else {
		log.Println("✅ .env file berhasil dimuat!")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	ResultsFile = GetEnv("RESULTS_FILE", "results.txt")

	accessTokenExpireMinutes = accessTokenExpireMinutesDefault
	if v := GetEnv("ACCESS_TOKEN_EXPIRE_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			accessTokenExpireMinutes = n
		} else {
			log.Printf("[WARN] ACCESS_TOKEN_EXPIRE_MINUTES tidak valid (%q), pakai default %d", v, accessTokenExpireMinutesDefault)
		}
	}

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// AccessTokenTTL masa berlaku access token (cookie MaxAge mengikuti ini).
func AccessTokenTTL() time.Duration {
	if accessTokenExpireMinutes <= 0 {
		return accessTokenExpireMinutesDefault * time.Minute
	}
	return time.Duration(accessTokenExpireMinutes) * time.Minute
}
