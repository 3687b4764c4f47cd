package service

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	apperrors "github.com/uncode/videojuegos/internal/errors"
)

// ReleaseDateLayout is the format of release dates in forms and spreadsheets
const ReleaseDateLayout = "2006-01-02"

func invalidValue(attribute string) error {
	return apperrors.Validation(apperrors.InvalidFormatMessage(attribute))
}

// ParsePrice rejects anything that is not a finite decimal, "NaN" and "Inf" included.
func ParsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, invalidValue("precio")
	}
	return price, nil
}

func ParseQuantity(raw string) (int, error) {
	quantity, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, invalidValue("cantidad")
	}
	return quantity, nil
}

// ParseReleaseDate accepts an empty value as "no date"; validation reports it.
func ParseReleaseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	date, err := time.Parse(ReleaseDateLayout, raw)
	if err != nil {
		return time.Time{}, invalidValue("lanzamiento")
	}
	return date, nil
}

// ParseOffer reads checkbox and spreadsheet flags: "on", "true", "si", "1", ...
func ParseOffer(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on", "true", "1", "si", "sí", "x":
		return true
	}
	return false
}

// ParseID maps anything that is not a uuid to uuid.Nil, which no row holds.
func ParseID(raw string) uuid.UUID {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil
	}
	return id
}
