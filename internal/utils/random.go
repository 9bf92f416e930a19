package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/carelink-dev/shift-market/backend/internal/domain"
)

var providerTitles = []string{"Dr.", "Nurse"}

var firstNames = []string{
	"Sarah", "Mike", "Emily", "James", "Laura", "David", "Anna", "Robert",
	"Maria", "Kevin", "Rachel", "Daniel", "Sofia", "Brian", "Grace", "Victor",
}

var lastNames = []string{
	"Johnson", "Chen", "Rodriguez", "Wilson", "Patel", "Nguyen", "Garcia",
	"Kim", "Brown", "Davis", "Martinez", "Lopez", "Clark", "Lewis", "Walker",
}

var units = []string{
	"Emergency Department", "ICU", "Pediatrics", "Surgery", "Med/Surg",
	"Cardiology", "Oncology", "Labor & Delivery", "Radiology",
}

var shiftNames = []string{"Day Shift", "Evening Shift", "Night Shift", "Weekend Shift"}

var facilities = []string{
	"City General Hospital", "Metro Medical Center", "Children's Hospital",
	"Bay Area Surgical Center", "Community Hospital", "Heart & Vascular Institute",
	"Riverside Clinic", "Lakeview Medical Group",
}

var locations = []string{
	"San Francisco, CA", "Oakland, CA", "Berkeley, CA", "San Jose, CA",
	"Palo Alto, CA", "Mountain View, CA", "Sacramento, CA",
}

func GenerateRandomProviderName() string {
	title := providerTitles[rand.Intn(len(providerTitles))]
	first := firstNames[rand.Intn(len(firstNames))]
	last := lastNames[rand.Intn(len(lastNames))]
	return fmt.Sprintf("%s %s %s", title, first, last)
}

var digits = "0123456789"

func GenerateRandomUser(emailDomainName string) *domain.User {
	name := GenerateRandomProviderName()

	// "Dr. Sarah Johnson" -> "sarah.johnson42@<domain>"
	parts := strings.Fields(name)
	local := strings.ToLower(parts[1] + "." + parts[2])
	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		local += string(digits[rand.Intn(len(digits))])
	}

	return &domain.User{
		Name:  name,
		Email: local + "@" + emailDomainName,
	}
}

func GenerateRandomShift() *domain.Shift {
	unit := units[rand.Intn(len(units))]
	description := fmt.Sprintf("%s coverage needed at short notice.", unit)
	location := locations[rand.Intn(len(locations))]

	startsAt := time.Now().
		AddDate(0, 0, rand.Intn(14)+1).
		Truncate(time.Hour).
		Add(time.Duration(rand.Intn(24)) * time.Hour)
	// 8 to 12 hours, may run past midnight
	endsAt := startsAt.Add(time.Duration(rand.Intn(5)+8) * time.Hour)

	return &domain.Shift{
		Title:           shiftNames[rand.Intn(len(shiftNames))] + " - " + unit,
		Description:     &description,
		FacilityName:    facilities[rand.Intn(len(facilities))],
		Location:        &location,
		StartsAt:        startsAt,
		EndsAt:          endsAt,
		HourlyRateCents: int64(rand.Intn(71)+60) * 100, // $60 to $130 an hour
		Status:          domain.ShiftStatusOpen,
	}
}
