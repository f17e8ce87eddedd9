// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/trulyinvoice/trulyinvoice/db/ent/schema"
	"github.com/trulyinvoice/trulyinvoice/gen/ent/document"
	"github.com/trulyinvoice/trulyinvoice/gen/ent/extractjob"
	"github.com/trulyinvoice/trulyinvoice/gen/ent/invoice"
	"github.com/trulyinvoice/trulyinvoice/gen/ent/lineitem"
	"github.com/trulyinvoice/trulyinvoice/gen/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescSourcePath is the schema descriptor for source_path field.
	documentDescSourcePath := documentFields[2].Descriptor()
	// document.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	document.SourcePathValidator = documentDescSourcePath.Validators[0].(func(string) error)
	// documentDescContentHash is the schema descriptor for content_hash field.
	documentDescContentHash := documentFields[3].Descriptor()
	// document.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	document.ContentHashValidator = documentDescContentHash.Validators[0].(func([]byte) error)
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[4].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescFileExt is the schema descriptor for file_ext field.
	documentDescFileExt := documentFields[5].Descriptor()
	// document.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	document.FileExtValidator = documentDescFileExt.Validators[0].(func(string) error)
	// documentDescFileSize is the schema descriptor for file_size field.
	documentDescFileSize := documentFields[6].Descriptor()
	// document.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	document.FileSizeValidator = documentDescFileSize.Validators[0].(func(int) error)
	// documentDescPageCount is the schema descriptor for page_count field.
	documentDescPageCount := documentFields[7].Descriptor()
	// document.DefaultPageCount holds the default value on creation for the page_count field.
	document.DefaultPageCount = documentDescPageCount.Default.(int)
	// document.PageCountValidator is a validator for the "page_count" field. It is called by the builders before save.
	document.PageCountValidator = documentDescPageCount.Validators[0].(func(int) error)
	// documentDescUploadedAt is the schema descriptor for uploaded_at field.
	documentDescUploadedAt := documentFields[8].Descriptor()
	// document.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	document.DefaultUploadedAt = documentDescUploadedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	extractjobFields := schema.ExtractJob{}.Fields()
	_ = extractjobFields
	// extractjobDescFormat is the schema descriptor for format field.
	extractjobDescFormat := extractjobFields[4].Descriptor()
	// extractjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	extractjob.FormatValidator = func() func(string) error {
		validators := extractjobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractjobDescStartedAt is the schema descriptor for started_at field.
	extractjobDescStartedAt := extractjobFields[5].Descriptor()
	// extractjob.DefaultStartedAt holds the default value on creation for the started_at field.
	extractjob.DefaultStartedAt = extractjobDescStartedAt.Default.(func() time.Time)
	// extractjobDescStatus is the schema descriptor for status field.
	extractjobDescStatus := extractjobFields[7].Descriptor()
	// extractjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extractjob.StatusValidator = extractjobDescStatus.Validators[0].(func(string) error)
	// extractjobDescNeedsReview is the schema descriptor for needs_review field.
	extractjobDescNeedsReview := extractjobFields[10].Descriptor()
	// extractjob.DefaultNeedsReview holds the default value on creation for the needs_review field.
	extractjob.DefaultNeedsReview = extractjobDescNeedsReview.Default.(bool)
	// extractjobDescID is the schema descriptor for id field.
	extractjobDescID := extractjobFields[0].Descriptor()
	// extractjob.DefaultID holds the default value on creation for the id field.
	extractjob.DefaultID = extractjobDescID.Default.(func() uuid.UUID)
	invoiceFields := schema.Invoice{}.Fields()
	_ = invoiceFields
	// invoiceDescInvoiceNumber is the schema descriptor for invoice_number field.
	invoiceDescInvoiceNumber := invoiceFields[3].Descriptor()
	// invoice.InvoiceNumberValidator is a validator for the "invoice_number" field. It is called by the builders before save.
	invoice.InvoiceNumberValidator = func() func(string) error {
		validators := invoiceDescInvoiceNumber.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(invoice_number string) error {
			for _, fn := range fns {
				if err := fn(invoice_number); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// invoiceDescVendorName is the schema descriptor for vendor_name field.
	invoiceDescVendorName := invoiceFields[4].Descriptor()
	// invoice.VendorNameValidator is a validator for the "vendor_name" field. It is called by the builders before save.
	invoice.VendorNameValidator = invoiceDescVendorName.Validators[0].(func(string) error)
	// invoiceDescTotalAmount is the schema descriptor for total_amount field.
	invoiceDescTotalAmount := invoiceFields[5].Descriptor()
	// invoice.TotalAmountValidator is a validator for the "total_amount" field. It is called by the builders before save.
	invoice.TotalAmountValidator = invoiceDescTotalAmount.Validators[0].(func(float64) error)
	// invoiceDescPaymentStatus is the schema descriptor for payment_status field.
	invoiceDescPaymentStatus := invoiceFields[8].Descriptor()
	// invoice.DefaultPaymentStatus holds the default value on creation for the payment_status field.
	invoice.DefaultPaymentStatus = invoiceDescPaymentStatus.Default.(string)
	// invoice.PaymentStatusValidator is a validator for the "payment_status" field. It is called by the builders before save.
	invoice.PaymentStatusValidator = invoiceDescPaymentStatus.Validators[0].(func(string) error)
	// invoiceDescConfidenceScore is the schema descriptor for confidence_score field.
	invoiceDescConfidenceScore := invoiceFields[9].Descriptor()
	// invoice.ConfidenceScoreValidator is a validator for the "confidence_score" field. It is called by the builders before save.
	invoice.ConfidenceScoreValidator = func() func(float64) error {
		validators := invoiceDescConfidenceScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(confidence_score float64) error {
			for _, fn := range fns {
				if err := fn(confidence_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// invoiceDescNeedsReview is the schema descriptor for needs_review field.
	invoiceDescNeedsReview := invoiceFields[10].Descriptor()
	// invoice.DefaultNeedsReview holds the default value on creation for the needs_review field.
	invoice.DefaultNeedsReview = invoiceDescNeedsReview.Default.(bool)
	// invoiceDescCreatedAt is the schema descriptor for created_at field.
	invoiceDescCreatedAt := invoiceFields[11].Descriptor()
	// invoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoice.DefaultCreatedAt = invoiceDescCreatedAt.Default.(func() time.Time)
	// invoiceDescUpdatedAt is the schema descriptor for updated_at field.
	invoiceDescUpdatedAt := invoiceFields[12].Descriptor()
	// invoice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoice.DefaultUpdatedAt = invoiceDescUpdatedAt.Default.(func() time.Time)
	// invoice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoice.UpdateDefaultUpdatedAt = invoiceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invoiceDescID is the schema descriptor for id field.
	invoiceDescID := invoiceFields[0].Descriptor()
	// invoice.DefaultID holds the default value on creation for the id field.
	invoice.DefaultID = invoiceDescID.Default.(func() uuid.UUID)
	lineitemFields := schema.LineItem{}.Fields()
	_ = lineitemFields
	// lineitemDescLineIndex is the schema descriptor for line_index field.
	lineitemDescLineIndex := lineitemFields[2].Descriptor()
	// lineitem.LineIndexValidator is a validator for the "line_index" field. It is called by the builders before save.
	lineitem.LineIndexValidator = lineitemDescLineIndex.Validators[0].(func(int) error)
	// lineitemDescDescription is the schema descriptor for description field.
	lineitemDescDescription := lineitemFields[3].Descriptor()
	// lineitem.DefaultDescription holds the default value on creation for the description field.
	lineitem.DefaultDescription = lineitemDescDescription.Default.(string)
	// lineitemDescQuantity is the schema descriptor for quantity field.
	lineitemDescQuantity := lineitemFields[4].Descriptor()
	// lineitem.DefaultQuantity holds the default value on creation for the quantity field.
	lineitem.DefaultQuantity = lineitemDescQuantity.Default.(float64)
	// lineitemDescRate is the schema descriptor for rate field.
	lineitemDescRate := lineitemFields[5].Descriptor()
	// lineitem.DefaultRate holds the default value on creation for the rate field.
	lineitem.DefaultRate = lineitemDescRate.Default.(float64)
	// lineitemDescAmount is the schema descriptor for amount field.
	lineitemDescAmount := lineitemFields[6].Descriptor()
	// lineitem.DefaultAmount holds the default value on creation for the amount field.
	lineitem.DefaultAmount = lineitemDescAmount.Default.(float64)
	// lineitemDescID is the schema descriptor for id field.
	lineitemDescID := lineitemFields[0].Descriptor()
	// lineitem.DefaultID holds the default value on creation for the id field.
	lineitem.DefaultID = lineitemDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[2].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescDefaultCurrency is the schema descriptor for default_currency field.
	userDescDefaultCurrency := userFields[3].Descriptor()
	// user.DefaultCurrencyValidator is a validator for the "default_currency" field. It is called by the builders before save.
	user.DefaultCurrencyValidator = func() func(string) error {
		validators := userDescDefaultCurrency.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(default_currency string) error {
			for _, fn := range fns {
				if err := fn(default_currency); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[4].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[5].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
