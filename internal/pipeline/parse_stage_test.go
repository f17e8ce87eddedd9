package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trulyinvoice/trulyinvoice/constants"
	"github.com/trulyinvoice/trulyinvoice/gen/ent"
	"github.com/trulyinvoice/trulyinvoice/gen/ent/enttest"
	"github.com/trulyinvoice/trulyinvoice/internal/llm"
	"github.com/trulyinvoice/trulyinvoice/internal/repository"

	_ "github.com/trulyinvoice/trulyinvoice/internal/common" // registers sqlite3 driver
)

type stubExtractor struct {
	out map[string]any
}

func (s *stubExtractor) ExtractFields(_ context.Context, _ llm.ExtractRequest) (map[string]any, []byte, error) {
	raw, err := json.Marshal(s.out)
	if err != nil {
		return nil, nil, err
	}
	return maps.Clone(s.out), raw, nil
}

func openTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	return enttest.Open(t, "sqlite3", dsn)
}

// seedTextOKJob creates an owner, a document, and an extract job that has
// already passed the text stage, returning the pieces the parse stage needs.
func seedTextOKJob(t *testing.T, client *ent.Client) (repository.UserRepository, repository.ExtractJobRepository, repository.InvoiceRepository, uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	logger := slog.Default()

	users := repository.NewUserRepository(client, logger)
	owner, err := users.CreateUser(ctx, &repository.User{
		Email:           "owner@example.com",
		Name:            "Owner",
		DefaultCurrency: "USD",
	})
	require.NoError(t, err)

	sum := sha256.Sum256([]byte("/inbox/inv-9.pdf"))
	doc, err := repository.NewDocumentRepository(client, logger).Create(ctx, repository.CreateDocumentArgs{
		OwnerID:    owner.ID,
		SourcePath: "/inbox/inv-9.pdf",
		Filename:   "inv-9.pdf",
		FileExt:    "pdf",
		FileSize:   1024,
		PageCount:  1,
		Hash:       sum[:],
		UploadedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	jobs := repository.NewExtractJobRepository(client, logger)
	job, err := jobs.Start(ctx, doc.ID, owner.ID, string(constants.PDF))
	require.NoError(t, err)
	require.NoError(t, jobs.FinishTextSuccess(ctx, job.ID, "Invoice INV-9 from Acme, total 120.00", 0.95, nil))

	return users, jobs, repository.NewInvoiceRepository(client, logger), job.ID
}

func TestParseStageStricterThresholdFlagsReview(t *testing.T) {
	client := openTestClient(t)
	defer client.Close()
	ctx := context.Background()

	users, jobs, invoices, jobID := seedTextOKJob(t, client)
	ext := &stubExtractor{out: map[string]any{
		"invoice_number":   "INV-9",
		"vendor_name":      "Acme",
		"total_amount":     120.0,
		"confidence_score": 0.8,
	}}

	stage := NewParseStage(slog.Default(), Config{MinConfidence: 0.9}, jobs, users, invoices, ext)
	invID, err := stage.Run(ctx, jobID)
	require.NoError(t, err)

	inv, err := invoices.GetByID(ctx, invID)
	require.NoError(t, err)
	assert.True(t, inv.NeedsReview)
}

func TestParseStageDefaultThresholdLeavesReviewAlone(t *testing.T) {
	client := openTestClient(t)
	defer client.Close()
	ctx := context.Background()

	users, jobs, invoices, jobID := seedTextOKJob(t, client)
	ext := &stubExtractor{out: map[string]any{
		"invoice_number":   "INV-9",
		"vendor_name":      "Acme",
		"total_amount":     120.0,
		"confidence_score": 0.8,
	}}

	stage := NewParseStage(slog.Default(), Config{}, jobs, users, invoices, ext)
	invID, err := stage.Run(ctx, jobID)
	require.NoError(t, err)

	inv, err := invoices.GetByID(ctx, invID)
	require.NoError(t, err)
	assert.False(t, inv.NeedsReview)
}
