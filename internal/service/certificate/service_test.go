package certificate

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pamellasantosa-pixel/ponto-esa-v5-sub000/internal/domain/certificate"
)

type fakeCertificateRepo struct {
	created []certificate.Certificate
	decided map[string]certificate.Status
}

func (f *fakeCertificateRepo) Create(_ context.Context, c certificate.Certificate) (certificate.Certificate, error) {
	c.ID = "c1"
	f.created = append(f.created, c)
	return c, nil
}

func (f *fakeCertificateRepo) SumApprovedHoursByDay(_ context.Context, _ string, _ time.Time) (float64, error) {
	return 0, nil
}

func (f *fakeCertificateRepo) ListApprovedRange(_ context.Context, _ string, _, _ time.Time) ([]certificate.Certificate, error) {
	return nil, nil
}

func (f *fakeCertificateRepo) Decide(_ context.Context, id string, status certificate.Status, _ string) error {
	if f.decided == nil {
		f.decided = make(map[string]certificate.Status)
	}
	f.decided[id] = status
	return nil
}

func TestFile_DerivesTotalHoursFromWindow(t *testing.T) {
	repo := &fakeCertificateRepo{}
	svc := NewCertificateService(repo, slog.Default())

	c, err := svc.File(context.Background(), certificate.FileRequest{
		Username: "maria",
		Date:     "2026-08-24",
		Start:    "08:00",
		End:      "12:30",
		Reason:   "consulta medica",
	})
	require.NoError(t, err)

	assert.InDelta(t, 4.5, c.TotalHours, 1e-9)
	assert.Equal(t, certificate.StatusPending, c.Status)
	require.NotNil(t, c.Reason)
	assert.Equal(t, "consulta medica", *c.Reason)
}

func TestFile_OvernightWindowRolls(t *testing.T) {
	svc := NewCertificateService(&fakeCertificateRepo{}, slog.Default())

	c, err := svc.File(context.Background(), certificate.FileRequest{
		Username: "maria",
		Date:     "2026-08-24",
		Start:    "22:00",
		End:      "02:00",
	})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, c.TotalHours, 1e-9)
}

func TestFile_ValidationRejectsBadDate(t *testing.T) {
	svc := NewCertificateService(&fakeCertificateRepo{}, slog.Default())

	_, err := svc.File(context.Background(), certificate.FileRequest{
		Username: "maria",
		Date:     "24/08/2026",
		Start:    "08:00",
		End:      "12:00",
	})
	require.Error(t, err)
}

func TestApproveAndReject(t *testing.T) {
	repo := &fakeCertificateRepo{}
	svc := NewCertificateService(repo, slog.Default())

	require.NoError(t, svc.Approve(context.Background(), "c1", "carlos"))
	require.NoError(t, svc.Reject(context.Background(), "c2", "carlos"))

	assert.Equal(t, certificate.StatusApproved, repo.decided["c1"])
	assert.Equal(t, certificate.StatusRejected, repo.decided["c2"])
}
