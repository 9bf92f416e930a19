package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type ApplicationReceivedMailData struct {
	Name         string `json:"name"`
	ShiftTitle   string `json:"shiftTitle"`
	FacilityName string `json:"facilityName"`
}

type ProviderHiredMailData struct {
	Name         string `json:"name"`
	ShiftTitle   string `json:"shiftTitle"`
	FacilityName string `json:"facilityName"`
	StartsAt     string `json:"startsAt"`
}
