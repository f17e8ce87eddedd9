package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/trulyinvoice/trulyinvoice/constants"
	"github.com/trulyinvoice/trulyinvoice/db/ent/schema/utils"
)

type Invoice struct{ ent.Schema }

func (Invoice) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoices"},
	}
}

func (Invoice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FKs
		field.UUID("owner_id", uuid.UUID{}),
		field.UUID("document_id", uuid.UUID{}).Unique(),
		field.String("invoice_number").NotEmpty().MaxLen(100),
		field.String("vendor_name").NotEmpty(),
		field.Float("total_amount").
			Min(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Time("invoice_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("due_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		// The allowed set comes from the constants package, the same table
		// the field validator normalizes against. Never list values here.
		field.String("payment_status").
			Default(string(constants.DefaultPaymentStatus)).
			Validate(utils.EnumValidator(constants.PaymentStatusStrings()...)),
		field.Float("confidence_score").Optional().Nillable().
			Min(0).Max(1),
		field.Bool("needs_review").Default(false),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Invoice) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY invoices -> ONE user
		edge.From("owner", User.Type).
			Ref("invoices").
			Field("owner_id").
			Required().
			Unique(),
		// ONE invoice -> ONE source document
		edge.From("document", Document.Type).
			Ref("invoice").
			Field("document_id").
			Required().
			Unique(),
		// ONE invoice -> MANY line items
		edge.To("line_items", LineItem.Type),
		// ONE invoice -> MANY jobs
		edge.To("jobs", ExtractJob.Type),
	}
}

func (Invoice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "invoice_date"),
		index.Fields("owner_id", "payment_status"),
	}
}
