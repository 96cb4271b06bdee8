package client

import (
	"os"

	"github.com/edustack/school-fees-api/models"
	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioClient is the SMS delivery sink the reminder flow fans out to when
// configured. Reminders are still persisted when Twilio is absent; SMS is
// best effort on top.
type TwilioClient struct {
	Client *twilio.RestClient
	L      *logrus.Logger
	number string
}

func NewTwilioClient(l *logrus.Logger) *TwilioClient {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	twilioNumber := os.Getenv("TWILIO_PHONE_NUMBER")
	if accountSid == "" || authToken == "" || twilioNumber == "" {
		return nil
	}
	return &TwilioClient{
		Client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		L:      l,
		number: twilioNumber,
	}
}

func (t *TwilioClient) SendSMS(to, body string) (*models.SendSMSResponse, error) {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(t.number)
	params.SetBody(body)

	_, err := t.Client.Api.CreateMessage(params)
	if err != nil {
		t.L.Errorf("Error sending SMS: %s", err.Error())
		return &models.SendSMSResponse{Successful: false, ErrorMessage: err.Error()}, err
	}
	return &models.SendSMSResponse{Successful: true, ErrorMessage: "none"}, nil
}
