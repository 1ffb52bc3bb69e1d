package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// SharedSecret authenticates webhook and admin calls. Empty disables
	// authentication (local development only).
	SharedSecret string

	// TrackerBaseURL is the public front-end page tracker links point at.
	TrackerBaseURL string

	// Branding parameters appended to every tracker link; empty values are
	// omitted.
	Logo      string
	LogoDark  string
	LogoLight string

	// Timezone the business operates in; dates and the daily schedule are
	// interpreted here.
	Timezone string

	// AdvancementSchedule is the five-field cron expression for the daily
	// status advancement pass.
	AdvancementSchedule string

	// StaticHolidays is a comma-separated list of extra holiday dates
	// ("2006-01-02") honored in addition to the Hebcal calendar.
	StaticHolidays string
}
