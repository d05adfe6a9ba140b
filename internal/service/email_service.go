package service

import (
	"context"
	"fmt"

	"edumarket/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"go.uber.org/zap"
)

// sesClient is the part of the SES API the email service uses
type sesClient interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// EmailService handles sending emails via Amazon SES
type EmailService struct {
	client     sesClient
	fromEmail  string
	fromName   string
	appBaseURL string
	enabled    bool
	logger     *zap.Logger
}

// NewEmailService creates a new email service.
// An empty fromEmail yields a disabled service that skips every send.
func NewEmailService(ctx context.Context, awsRegion, fromEmail, fromName, appBaseURL string, logger *zap.Logger) (*EmailService, error) {
	if fromEmail == "" {
		logger.Info("Email service disabled: SES_FROM_EMAIL not configured")
		return &EmailService{enabled: false, logger: logger}, nil
	}

	logger.Debug("Initializing email service with AWS SES",
		zap.String("region", awsRegion),
		zap.String("from_email", fromEmail),
		zap.String("from_name", fromName),
		zap.String("app_base_url", appBaseURL),
	)

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(awsRegion))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	logger.Info("Email service enabled", zap.String("from", fromEmail), zap.String("region", awsRegion))
	return newEmailServiceWithClient(sesv2.NewFromConfig(cfg), fromEmail, fromName, appBaseURL, logger), nil
}

func newEmailServiceWithClient(client sesClient, fromEmail, fromName, appBaseURL string, logger *zap.Logger) *EmailService {
	return &EmailService{
		client:     client,
		fromEmail:  fromEmail,
		fromName:   fromName,
		appBaseURL: appBaseURL,
		enabled:    true,
		logger:     logger,
	}
}

// IsEnabled returns whether the email service is enabled
func (s *EmailService) IsEnabled() bool {
	return s.enabled
}

// SendWelcomeEmail greets a new student or tutor
func (s *EmailService) SendWelcomeEmail(ctx context.Context, toEmail, toName string, role models.Role) error {
	if !s.enabled {
		s.logger.Debug("Skipping email send (service disabled)", zap.String("kind", "welcome"), zap.String("to", toEmail))
		return nil
	}

	next := "Browse the catalogue and purchase your first course section."
	link := s.appBaseURL + "/student-dashboard"
	if role == models.RoleTutor {
		next = "Pass the tutor assessment to start publishing courses."
		link = s.appBaseURL + "/tutor-access"
	}

	subject := "Welcome to EduMarket!"
	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
		.container { max-width: 600px; margin: 0 auto; padding: 20px; }
		.header { background-color: #1e3a8a; color: white; padding: 20px; text-align: center; border-radius: 5px 5px 0 0; }
		.content { background-color: #f9f9f9; padding: 30px; border-radius: 0 0 5px 5px; }
		.button { display: inline-block; padding: 12px 30px; background-color: #1e3a8a; color: white; text-decoration: none; border-radius: 5px; margin: 20px 0; }
	</style>
</head>
<body>
	<div class="container">
		<div class="header"><h1>Welcome to EduMarket!</h1></div>
		<div class="content">
			<p>Hi %s,</p>
			<p>Your account is ready. %s</p>
			<p style="text-align: center;"><a href="%s" class="button">Get Started</a></p>
		</div>
	</div>
</body>
</html>
`, toName, next, link)

	textBody := fmt.Sprintf(`Hi %s,

Your account is ready. %s

Get started: %s
`, toName, next, link)

	return s.sendEmail(ctx, toEmail, subject, htmlBody, textBody)
}

// SendTutorApprovedEmail tells a tutor they passed the assessment
func (s *EmailService) SendTutorApprovedEmail(ctx context.Context, toEmail, toName string, score float64) error {
	if !s.enabled {
		s.logger.Debug("Skipping email send (service disabled)", zap.String("kind", "tutor_approved"), zap.String("to", toEmail))
		return nil
	}

	link := s.appBaseURL + "/tutor-dashboard"
	subject := "You're approved to teach on EduMarket"
	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body>
	<p>Hi %s,</p>
	<p>You scored %.1f/10 on the tutor assessment and can now create courses.</p>
	<p><a href="%s">Open your dashboard</a></p>
</body>
</html>
`, toName, score, link)

	textBody := fmt.Sprintf(`Hi %s,

You scored %.1f/10 on the tutor assessment and can now create courses.

Open your dashboard: %s
`, toName, score, link)

	return s.sendEmail(ctx, toEmail, subject, htmlBody, textBody)
}

// sendEmail sends an email using Amazon SES
func (s *EmailService) sendEmail(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	fromAddress := s.fromEmail
	if s.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}

	fields := []zap.Field{zap.String("to", toEmail), zap.String("subject", subject)}
	if result != nil && result.MessageId != nil {
		fields = append(fields, zap.String("message_id", *result.MessageId))
	}
	s.logger.Info("Email sent successfully", fields...)
	return nil
}
