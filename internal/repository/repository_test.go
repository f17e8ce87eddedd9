package repository

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trulyinvoice/trulyinvoice/constants"
	"github.com/trulyinvoice/trulyinvoice/gen/ent"
	"github.com/trulyinvoice/trulyinvoice/gen/ent/enttest"
	"github.com/trulyinvoice/trulyinvoice/internal/fields"

	_ "github.com/trulyinvoice/trulyinvoice/internal/common" // registers sqlite3 driver
)

func openTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	return enttest.Open(t, "sqlite3", dsn)
}

func seedOwner(t *testing.T, client *ent.Client) *ent.User {
	t.Helper()
	u, err := NewUserRepository(client, slog.Default()).CreateUser(context.Background(), &User{
		Email:           "owner@example.com",
		Name:            "Owner",
		DefaultCurrency: "USD",
	})
	require.NoError(t, err)
	return u
}

func seedDocument(t *testing.T, client *ent.Client, ownerID uuid.UUID, path string) *ent.Document {
	t.Helper()
	sum := sha256.Sum256([]byte(path))
	doc, err := NewDocumentRepository(client, slog.Default()).Create(context.Background(), CreateDocumentArgs{
		OwnerID:    ownerID,
		SourcePath: path,
		Filename:   path,
		FileExt:    "pdf",
		FileSize:   1024,
		PageCount:  1,
		Hash:       sum[:],
		UploadedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	return doc
}

func sampleRecord(owner, doc uuid.UUID) *fields.Record {
	d := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	conf := 0.9
	return &fields.Record{
		OwnerID:          owner.String(),
		SourceDocumentID: doc.String(),
		InvoiceNumber:    "INV-42",
		VendorName:       "Acme Corp",
		TotalAmount:      150,
		InvoiceDate:      &d,
		PaymentStatus:    constants.PaymentStatusUnpaid,
		ConfidenceScore:  &conf,
		LineItems: []fields.LineItem{
			{Description: "Widgets", Quantity: 3, Rate: 50, Amount: 150},
		},
	}
}

func TestDocumentUpsertByHashDedup(t *testing.T) {
	client := openTestClient(t)
	defer client.Close()
	ctx := context.Background()

	owner := seedOwner(t, client)
	repo := NewDocumentRepository(client, slog.Default())

	sum := sha256.Sum256([]byte("same bytes"))
	args := CreateDocumentArgs{
		OwnerID:    owner.ID,
		SourcePath: "/inbox/a.pdf",
		Filename:   "a.pdf",
		FileExt:    "pdf",
		FileSize:   2048,
		PageCount:  2,
		Hash:       sum[:],
		UploadedAt: time.Now().UTC(),
	}

	first, dedup, err := repo.UpsertByHash(ctx, args)
	require.NoError(t, err)
	assert.False(t, dedup)

	// identical content under a different path dedupes to the same row
	args.SourcePath = "/inbox/copy-of-a.pdf"
	second, dedup, err := repo.UpsertByHash(ctx, args)
	require.NoError(t, err)
	assert.True(t, dedup)
	assert.Equal(t, first.ID, second.ID)
}

func TestInvoiceUpsertKeyedByDocument(t *testing.T) {
	client := openTestClient(t)
	defer client.Close()
	ctx := context.Background()

	owner := seedOwner(t, client)
	doc := seedDocument(t, client, owner.ID, "/inbox/inv.pdf")
	repo := NewInvoiceRepository(client, slog.Default())

	rec := sampleRecord(owner.ID, doc.ID)
	first, err := repo.UpsertFromRecord(ctx, &UpsertInvoiceRequest{Document: doc, JobID: uuid.New(), Record: rec})
	require.NoError(t, err)
	require.Len(t, first.LineItems, 1)

	// reprocessing the same document replaces, never duplicates
	rec2 := sampleRecord(owner.ID, doc.ID)
	rec2.TotalAmount = 200
	rec2.LineItems = []fields.LineItem{
		{Description: "Widgets", Quantity: 2, Rate: 50, Amount: 100},
		{Description: "Gadgets", Quantity: 1, Rate: 100, Amount: 100},
	}
	second, err := repo.UpsertFromRecord(ctx, &UpsertInvoiceRequest{Document: doc, JobID: uuid.New(), Record: rec2})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 200.0, second.TotalAmount)
	require.Len(t, second.LineItems, 2)
	assert.Equal(t, "Gadgets", second.LineItems[1].Description)

	all, err := repo.ListInvoices(ctx, owner.ID, ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestInvoiceListFilters(t *testing.T) {
	client := openTestClient(t)
	defer client.Close()
	ctx := context.Background()

	owner := seedOwner(t, client)
	repo := NewInvoiceRepository(client, slog.Default())

	mk := func(path, number string, day int, status constants.PaymentStatus) {
		doc := seedDocument(t, client, owner.ID, path)
		rec := sampleRecord(owner.ID, doc.ID)
		rec.InvoiceNumber = number
		d := time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC)
		rec.InvoiceDate = &d
		rec.PaymentStatus = status
		_, err := repo.UpsertFromRecord(ctx, &UpsertInvoiceRequest{Document: doc, JobID: uuid.New(), Record: rec})
		require.NoError(t, err)
	}
	mk("/inbox/1.pdf", "INV-1", 1, constants.PaymentStatusPaid)
	mk("/inbox/2.pdf", "INV-2", 10, constants.PaymentStatusUnpaid)
	mk("/inbox/3.pdf", "INV-3", 20, constants.PaymentStatusUnpaid)

	from := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	got, err := repo.ListInvoices(ctx, owner.ID, ListFilter{FromDate: &from})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = repo.ListInvoices(ctx, owner.ID, ListFilter{PaymentStatus: "paid"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "INV-1", got[0].InvoiceNumber)
}

func TestInvoiceUpdateFromRecord(t *testing.T) {
	client := openTestClient(t)
	defer client.Close()
	ctx := context.Background()

	owner := seedOwner(t, client)
	doc := seedDocument(t, client, owner.ID, "/inbox/u.pdf")
	repo := NewInvoiceRepository(client, slog.Default())

	created, err := repo.UpsertFromRecord(ctx, &UpsertInvoiceRequest{Document: doc, JobID: uuid.New(), Record: sampleRecord(owner.ID, doc.ID)})
	require.NoError(t, err)

	rec := sampleRecord(owner.ID, doc.ID)
	rec.PaymentStatus = constants.PaymentStatusPaid
	rec.InvoiceDate = nil
	rec.LineItems = nil

	updated, err := repo.UpdateFromRecord(ctx, created.ID, rec)
	require.NoError(t, err)
	assert.Equal(t, constants.PaymentStatusPaid, updated.PaymentStatus)
	assert.Nil(t, updated.InvoiceDate)
	assert.Empty(t, updated.LineItems)
}

func TestInvoiceDelete(t *testing.T) {
	client := openTestClient(t)
	defer client.Close()
	ctx := context.Background()

	owner := seedOwner(t, client)
	doc := seedDocument(t, client, owner.ID, "/inbox/d.pdf")
	repo := NewInvoiceRepository(client, slog.Default())

	created, err := repo.UpsertFromRecord(ctx, &UpsertInvoiceRequest{Document: doc, JobID: uuid.New(), Record: sampleRecord(owner.ID, doc.ID)})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.True(t, ent.IsNotFound(err))
}

func TestExtractJobLifecycle(t *testing.T) {
	client := openTestClient(t)
	defer client.Close()
	ctx := context.Background()

	owner := seedOwner(t, client)
	doc := seedDocument(t, client, owner.ID, "/inbox/j.pdf")
	jobs := NewExtractJobRepository(client, slog.Default())
	invoices := NewInvoiceRepository(client, slog.Default())

	job, err := jobs.Start(ctx, doc.ID, owner.ID, string(constants.PDF))
	require.NoError(t, err)
	require.NotNil(t, job.Status)
	assert.Equal(t, string(constants.JobStatusRunning), *job.Status)

	require.NoError(t, jobs.FinishTextSuccess(ctx, job.ID, "INVOICE INV-42 ...", 0.8, map[string]any{"pages": 1}))

	loaded, gotDoc, err := jobs.GetWithDocument(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, gotDoc.ID)
	assert.Equal(t, string(constants.JobStatusTextOK), *loaded.Status)
	require.NotNil(t, loaded.DocumentText)
	assert.Contains(t, *loaded.DocumentText, "INV-42")

	inv, err := invoices.UpsertFromRecord(ctx, &UpsertInvoiceRequest{Document: doc, JobID: job.ID, Record: sampleRecord(owner.ID, doc.ID)})
	require.NoError(t, err)

	conf := float32(0.9)
	require.NoError(t, jobs.FinishParseSuccess(ctx, job.ID, inv.ID, []byte(`{"invoice_number":"INV-42"}`), &conf, false, "gpt-4o-mini"))

	final, _, err := jobs.GetWithDocument(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusParsed), *final.Status)
	require.NotNil(t, final.InvoiceID)
	assert.Equal(t, inv.ID, *final.InvoiceID)
	require.NotNil(t, final.FinishedAt)
}

func TestExtractJobRejectedKeepsRawOutput(t *testing.T) {
	client := openTestClient(t)
	defer client.Close()
	ctx := context.Background()

	owner := seedOwner(t, client)
	doc := seedDocument(t, client, owner.ID, "/inbox/r.pdf")
	jobs := NewExtractJobRepository(client, slog.Default())

	job, err := jobs.Start(ctx, doc.ID, owner.ID, string(constants.PDF))
	require.NoError(t, err)

	raw := []byte(`{"total_amount":"-5"}`)
	require.NoError(t, jobs.FinishRejected(ctx, job.ID, "total_amount: negative amount", raw))

	loaded, _, err := jobs.GetWithDocument(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusRejected), *loaded.Status)
	require.NotNil(t, loaded.ErrorMessage)
	assert.Contains(t, *loaded.ErrorMessage, "total_amount")
	assert.JSONEq(t, string(raw), string(loaded.ExtractedJSON))
}
