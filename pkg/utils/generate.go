package utils

import (
	"math/rand"
	"strconv"

	"github.com/google/uuid"
)

// ==================== UUID ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// ==================== INVOICE CODE ====================

const invoiceCodeChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateInvoiceCode returns a 6-character human-readable booking code.
// Uniform per character; not guaranteed globally unique.
func GenerateInvoiceCode() string {
	code := make([]byte, 6)
	for i := range code {
		code[i] = invoiceCodeChars[rand.Intn(len(invoiceCodeChars))]
	}
	return string(code)
}

// ==================== MISC ====================

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}
