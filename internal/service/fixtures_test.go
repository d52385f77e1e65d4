package service_test

import (
	"context"
	"regexp"
	"sync"
	"testing"
	"time"

	"notehive-be/internal/config"
	"notehive-be/internal/dto"
	"notehive-be/internal/pkg/token"
	"notehive-be/internal/repository/memory"
	"notehive-be/internal/service"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type capturingPublisher struct {
	mu   sync.Mutex
	jobs []dto.MailJob
}

func (p *capturingPublisher) Publish(job dto.MailJob) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.jobs = append(p.jobs, job)
}

func (p *capturingPublisher) last(t *testing.T) dto.MailJob {
	t.Helper()
	p.mu.Lock()
	defer p.mu.Unlock()
	require.NotEmpty(t, p.jobs)
	return p.jobs[len(p.jobs)-1]
}

var rawTokenPattern = regexp.MustCompile(`[0-9a-f]{64}`)

// lastMailToken pulls the raw temporary token out of the most recently
// published mail body.
func (p *capturingPublisher) lastMailToken(t *testing.T) string {
	t.Helper()
	raw := rawTokenPattern.FindString(p.last(t).Body)
	require.NotEmpty(t, raw)
	return raw
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type fixture struct {
	store     *memory.Store
	issuer    *token.Issuer
	publisher *capturingPublisher

	auth      service.IAuthService
	notebooks service.INotebookService
	sections  service.ISectionService
	pages     service.IPageService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memory.NewStore()
	factory := memory.NewFactory(store)

	appCfg := config.AppConfig{
		BaseURL:   "http://localhost:3000",
		ClientURL: "http://localhost:5173",
	}
	authCfg := config.AuthConfig{
		AccessTokenSecret:  "test-access-secret",
		RefreshTokenSecret: "test-refresh-secret",
		AccessTokenTTL:     time.Hour,
		RefreshTokenTTL:    24 * time.Hour,
		TempTokenTTL:       20 * time.Minute,
		BcryptCost:         bcrypt.MinCost,
	}

	issuer := token.NewIssuer(authCfg)
	publisher := &capturingPublisher{}

	return &fixture{
		store:     store,
		issuer:    issuer,
		publisher: publisher,
		auth:      service.NewAuthService(factory, issuer, publisher, service.NewRotationLockRegistry(), appCfg, authCfg),
		notebooks: service.NewNotebookService(factory),
		sections:  service.NewSectionService(factory),
		pages:     service.NewPageService(factory),
	}
}

// registerVerified walks an account through register and email verification.
func (f *fixture) registerVerified(t *testing.T, email, password string) *dto.UserResponse {
	t.Helper()
	ctx := context.Background()

	user, err := f.auth.Register(ctx, &dto.RegisterRequest{
		FullName: "Test User",
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)

	_, err = f.auth.VerifyEmail(ctx, f.publisher.lastMailToken(t))
	require.NoError(t, err)

	return user
}
