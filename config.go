package main

type Config struct {
	Port   string `env:"PORT" env-default:"3330"`
	DbPath string `env:"DBPATH"`
	// FQDN is the public host name used to build the attendance links
	// embedded in roll-call notices.
	FQDN         string `env:"FQDN" env-default:"localhost"`
	JobsSecret   string `env:"JOBS_SECRET"`
	SmtpServer   string `env:"SMTP_SERVER"`
	SmtpPort     int    `env:"SMTP_PORT" env-default:"587"`
	SmtpUser     string `env:"SMTP_USER"`
	SmtpPassword string `env:"SMTP_PASSWORD"`
	// CronEnabled turns on the built-in periodic invoker. Leave it off when
	// an external scheduler hits the jobs endpoint instead; the two must not
	// run at the same time.
	CronEnabled       bool   `env:"CRON_ENABLED" env-default:"false"`
	RollCallSpec      string `env:"ROLL_CALL_SPEC" env-default:"*/5 * * * *"`
	ReminderSpec      string `env:"REMINDER_SPEC" env-default:"0 9 * * *"`
	DigestSpec        string `env:"DIGEST_SPEC" env-default:"0 18 * * *"`
	ProjectDigestSpec string `env:"PROJECT_DIGEST_SPEC" env-default:"5 18 * * *"`
	RollForwardSpec   string `env:"ROLL_FORWARD_SPEC" env-default:"30 0 * * *"`
}
