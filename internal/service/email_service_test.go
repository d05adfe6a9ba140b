package service

import (
	"context"
	"errors"
	"testing"

	"edumarket/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSES struct {
	sent []*sesv2.SendEmailInput
	err  error
}

func (f *fakeSES) SendEmail(_ context.Context, params *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, params)
	return &sesv2.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func TestEmailServiceDisabled(t *testing.T) {
	svc, err := NewEmailService(context.Background(), "us-east-1", "", "", "", zap.NewNop())
	require.NoError(t, err)
	assert.False(t, svc.IsEnabled())
	assert.NoError(t, svc.SendWelcomeEmail(context.Background(), "a@x.com", "A", models.RoleStudent))
	assert.NoError(t, svc.SendTutorApprovedEmail(context.Background(), "a@x.com", "A", 8))
}

func TestSendWelcomeEmail(t *testing.T) {
	fake := &fakeSES{}
	svc := newEmailServiceWithClient(fake, "hello@edumarket.test", "EduMarket", "https://edumarket.test", zap.NewNop())

	require.NoError(t, svc.SendWelcomeEmail(context.Background(), "t@x.com", "Tia", models.RoleTutor))
	require.Len(t, fake.sent, 1)

	msg := fake.sent[0]
	assert.Equal(t, "EduMarket <hello@edumarket.test>", aws.ToString(msg.FromEmailAddress))
	assert.Equal(t, []string{"t@x.com"}, msg.Destination.ToAddresses)
	assert.Contains(t, aws.ToString(msg.Content.Simple.Body.Text.Data), "https://edumarket.test/tutor-access")
}

func TestSendTutorApprovedEmailError(t *testing.T) {
	fake := &fakeSES{err: errors.New("throttled")}
	svc := newEmailServiceWithClient(fake, "hello@edumarket.test", "", "https://edumarket.test", zap.NewNop())

	err := svc.SendTutorApprovedEmail(context.Background(), "t@x.com", "Tia", 8)
	assert.ErrorContains(t, err, "throttled")
}

func TestSignupSendsWelcomeEmail(t *testing.T) {
	env := newTestEnv(t)
	fake := &fakeSES{err: errors.New("down")}
	env.auth.emails = newEmailServiceWithClient(fake, "hello@edumarket.test", "", "", zap.NewNop())

	// delivery failures do not fail the signup
	sess := env.signup(t, "a@x.com", models.RoleStudent)
	assert.True(t, sess.IsAuthenticated())

	fake.err = nil
	env.signup(t, "b@x.com", models.RoleStudent)
	require.Len(t, fake.sent, 1)
	assert.Equal(t, []string{"b@x.com"}, fake.sent[0].Destination.ToAddresses)
}
