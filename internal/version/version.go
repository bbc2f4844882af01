package version

const (
	AppName     = "harubot"
	AppFullName = "Harubot — a busy student who sometimes comes online"
	AppVersion  = "0.3.0"
)
