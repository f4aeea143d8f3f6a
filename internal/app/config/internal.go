package config

type InternalConfig struct {
	App App
	JWT JWT
}

type App struct {
	Env                            string
	Port                           string
	Version                        string
	Address                        string
	Timezone                       string
	EndpointPrefix                 string
	MailerEmailSender              string
	RabbitMQMailerQueue            string
	MaxRequests                    int
	ShutdownTimeoutInSeconds       int
	RequestBodyLimitInMegabyte     int
	LoginSessionExpiredTimeInHours int
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}
