// pkg/email/service.go
package email

var GlobalEmailService *EmailService

func InitEmailService(apiKey, from, notifyTo string) error {
	service, err := NewEmailService(apiKey, from, notifyTo)
	if err != nil {
		return err
	}
	GlobalEmailService = service
	return nil
}
