package constants

const (
	AppName         = "teller"
	DefaultBankName = "AwesomeGIC Bank"
)
