package utils

import (
	"os"
	"strconv"
)

// GetEnvDefault возвращает переменную окружения или значение по умолчанию
func GetEnvDefault(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// GetEnvInt64 разбирает целое из окружения; при ошибке, def
func GetEnvInt64(key string, def int64) int64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}

// GetEnvBool понимает 1/true/yes и 0/false/no
func GetEnvBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err == nil {
		return b
	}
	switch v {
	case "yes", "on":
		return true
	case "no", "off":
		return false
	}
	return def
}
