package http

import (
	"time"

	"agrirent/internal/core/application/usecases/queries"
	"agrirent/internal/core/domain/model/device"
	"agrirent/internal/core/domain/model/kernel"
	"agrirent/internal/core/domain/model/lease"
	"agrirent/internal/core/domain/model/order"
	"agrirent/internal/core/domain/model/pricing"
	"agrirent/internal/core/domain/model/threshold"

	"github.com/shopspring/decimal"
)

// Requests.

type NewOrder struct {
	DeviceID       string   `json:"deviceId"`
	RequesterName  string   `json:"requesterName"`
	RequesterPhone string   `json:"requesterPhone"`
	RequestedHours *float64 `json:"requestedHours"`
	RequestedArea  *float64 `json:"requestedArea"`
	StartDate      string   `json:"startDate"`
	EndDate        string   `json:"endDate"`
	Note           string   `json:"note"`
	Draft          bool     `json:"draft"`
}

type StatusChange struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

type NoteBody struct {
	Note string `json:"note"`
}

type NewLease struct {
	Deposit decimal.Decimal `json:"deposit"`
	Notes   string          `json:"notes"`
}

type NewOperatorAssignment struct {
	OperatorID string `json:"operatorId"`
	Role       string `json:"role"`
}

type LeaseCompletion struct {
	EndDate string `json:"endDate"`
	Note    string `json:"note"`
}

type NewAttachment struct {
	DocumentType string `json:"documentType"`
	URL          string `json:"url"`
}

type NewRate struct {
	Metric string          `json:"metric"`
	Amount decimal.Decimal `json:"amount"`
}

type NewPricingRule struct {
	CategoryID    string    `json:"categoryId"`
	Location      string    `json:"location"`
	Rates         []NewRate `json:"rates"`
	EffectiveFrom string    `json:"effectiveFrom"`
	EffectiveTo   string    `json:"effectiveTo"`
}

type NewThresholdConfig struct {
	MaxRentalHours float64 `json:"maxRentalHours"`
	MaxRentalArea  float64 `json:"maxRentalArea"`
	EffectiveFrom  string  `json:"effectiveFrom"`
	EffectiveTo    string  `json:"effectiveTo"`
}

// Responses.

type Requester struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type OrderHandler struct {
	Kind string  `json:"kind"`
	ID   *string `json:"id,omitempty"`
}

type Order struct {
	ID                string       `json:"id"`
	Kind              string       `json:"kind"`
	Status            string       `json:"status"`
	DeviceID          string       `json:"deviceId"`
	Requester         Requester    `json:"requester"`
	Handler           OrderHandler `json:"handler"`
	RequestedHours    *float64     `json:"requestedHours,omitempty"`
	RequestedArea     *float64     `json:"requestedArea,omitempty"`
	StartDate         string       `json:"startDate"`
	EndDate           string       `json:"endDate"`
	Note              string       `json:"note,omitempty"`
	Version           int64        `json:"version"`
	AllowedNextStates []string     `json:"allowedNextStates"`
}

type Commitment struct {
	Kind  string  `json:"kind"`
	Value float64 `json:"value"`
}

type Operator struct {
	OperatorID string    `json:"operatorId"`
	Role       string    `json:"role"`
	AssignedAt time.Time `json:"assignedAt"`
}

type Attachment struct {
	DocumentType string    `json:"documentType"`
	URL          string    `json:"url"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

type Lease struct {
	ID             string          `json:"id"`
	OrderID        string          `json:"orderId"`
	DeviceID       string          `json:"deviceId"`
	IntermediaryID string          `json:"intermediaryId"`
	Status         string          `json:"status"`
	Commitment     Commitment      `json:"commitment"`
	EstimatedPrice decimal.Decimal `json:"estimatedPrice"`
	Deposit        decimal.Decimal `json:"deposit"`
	StartDate      string          `json:"startDate"`
	EndDate        *string         `json:"endDate,omitempty"`
	Operators      []Operator      `json:"operators"`
	SignedBy       string          `json:"signedBy"`
	Attachments    []Attachment    `json:"attachments"`
	Notes          string          `json:"notes,omitempty"`
	Version        int64           `json:"version"`
}

type Rate struct {
	Metric string          `json:"metric"`
	Amount decimal.Decimal `json:"amount"`
}

type PricingRule struct {
	ID            string  `json:"id"`
	CategoryID    string  `json:"categoryId"`
	Location      string  `json:"location"`
	Rates         []Rate  `json:"rates"`
	EffectiveFrom string  `json:"effectiveFrom"`
	EffectiveTo   *string `json:"effectiveTo,omitempty"`
	Status        string  `json:"status,omitempty"`
	Standing      bool    `json:"standing"`
}

type ThresholdConfig struct {
	ID             string  `json:"id"`
	CategoryID     string  `json:"categoryId"`
	MaxRentalHours float64 `json:"maxRentalHours"`
	MaxRentalArea  float64 `json:"maxRentalArea"`
	EffectiveFrom  string  `json:"effectiveFrom"`
	EffectiveTo    *string `json:"effectiveTo,omitempty"`
	Status         string  `json:"status"`
}

type Device struct {
	ID                    string  `json:"id"`
	CategoryID            string  `json:"categoryId"`
	Location              string  `json:"location"`
	Status                string  `json:"status"`
	Public                bool    `json:"public"`
	ServingIntermediaryID *string `json:"servingIntermediaryId,omitempty"`
	CurrentLeaseID        *string `json:"currentLeaseId,omitempty"`
	Version               int64   `json:"version"`
}

type AuditEntry struct {
	ID         string    `json:"id"`
	Action     string    `json:"action"`
	FromState  string    `json:"fromState,omitempty"`
	ToState    string    `json:"toState,omitempty"`
	ActorID    *string   `json:"actorId,omitempty"`
	Note       string    `json:"note,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

func idString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func dateString(d *kernel.Date) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

func orderFromDomain(o *order.Order) Order {
	next := o.AllowedNextStates()
	names := make([]string, len(next))
	for i, s := range next {
		names[i] = s.String()
	}
	return Order{
		ID:       o.ID().String(),
		Kind:     o.Kind().String(),
		Status:   o.Status().String(),
		DeviceID: o.DeviceID().String(),
		Requester: Requester{
			ID:    o.Requester().ID().String(),
			Name:  o.Requester().Name(),
			Phone: o.Requester().Phone(),
		},
		Handler:           OrderHandler{Kind: string(o.Handler().Kind()), ID: idString(o.Handler().ID())},
		RequestedHours:    o.Usage().Hours(),
		RequestedArea:     o.Usage().Area(),
		StartDate:         o.Period().Start().String(),
		EndDate:           o.Period().End().String(),
		Note:              o.Note(),
		Version:           o.Version(),
		AllowedNextStates: names,
	}
}

func orderFromQuery(r queries.GetOrderQueryResponse) Order {
	return Order{
		ID:       r.ID.String(),
		Kind:     r.Kind,
		Status:   r.Status,
		DeviceID: r.DeviceID.String(),
		Requester: Requester{
			ID:    r.RequesterID.String(),
			Name:  r.RequesterName,
			Phone: r.RequesterPhone,
		},
		Handler:           OrderHandler{Kind: r.HandlerKind, ID: idString(r.HandlerID)},
		RequestedHours:    r.RequestedHours,
		RequestedArea:     r.RequestedArea,
		StartDate:         r.StartDate.String(),
		EndDate:           r.EndDate.String(),
		Note:              r.Note,
		Version:           r.Version,
		AllowedNextStates: r.AllowedNextStates,
	}
}

func leaseFromDomain(l *lease.Lease) Lease {
	operators := make([]Operator, 0, len(l.Operators()))
	for _, op := range l.Operators() {
		operators = append(operators, Operator{
			OperatorID: op.OperatorID().String(),
			Role:       string(op.Role()),
			AssignedAt: op.AssignedAt(),
		})
	}
	attachments := make([]Attachment, 0, len(l.Attachments()))
	for _, a := range l.Attachments() {
		attachments = append(attachments, Attachment{
			DocumentType: a.DocumentType(),
			URL:          a.URL(),
			UploadedAt:   a.UploadedAt(),
		})
	}
	return Lease{
		ID:             l.ID().String(),
		OrderID:        l.OrderID().String(),
		DeviceID:       l.DeviceID().String(),
		IntermediaryID: l.IntermediaryID().String(),
		Status:         l.Status().String(),
		Commitment:     Commitment{Kind: string(l.Commitment().Kind()), Value: l.Commitment().Value()},
		EstimatedPrice: l.EstimatedPrice(),
		Deposit:        l.Deposit(),
		StartDate:      l.StartDate().String(),
		EndDate:        dateString(l.EndDate()),
		Operators:      operators,
		SignedBy:       l.SignedBy().String(),
		Attachments:    attachments,
		Notes:          l.Notes(),
		Version:        l.Version(),
	}
}

func ruleFromDomain(r *pricing.Rule) PricingRule {
	rates := make([]Rate, 0, len(r.Rates()))
	for _, rate := range r.Rates() {
		rates = append(rates, Rate{Metric: string(rate.Metric()), Amount: rate.Amount()})
	}
	return PricingRule{
		ID:            r.ID().String(),
		CategoryID:    r.CategoryID().String(),
		Location:      r.Location().String(),
		Rates:         rates,
		EffectiveFrom: r.EffectiveFrom().String(),
		EffectiveTo:   dateString(r.EffectiveTo()),
		Status:        string(r.Status()),
		Standing:      r.IsStanding(),
	}
}

func ruleFromQuery(r queries.GetActivePricingRuleQueryResponse) PricingRule {
	rates := make([]Rate, 0, len(r.Rates))
	for _, rate := range r.Rates {
		rates = append(rates, Rate{Metric: rate.Metric, Amount: rate.Amount})
	}
	return PricingRule{
		ID:            r.RuleID.String(),
		CategoryID:    r.CategoryID.String(),
		Location:      r.Location,
		Rates:         rates,
		EffectiveFrom: r.EffectiveFrom.String(),
		EffectiveTo:   dateString(r.EffectiveTo),
		Status:        string(pricing.StatusActive),
		Standing:      r.Standing,
	}
}

func thresholdFromDomain(c *threshold.Config) ThresholdConfig {
	return ThresholdConfig{
		ID:             c.ID().String(),
		CategoryID:     c.CategoryID().String(),
		MaxRentalHours: c.MaxRentalHours(),
		MaxRentalArea:  c.MaxRentalArea(),
		EffectiveFrom:  c.EffectiveFrom().String(),
		EffectiveTo:    dateString(c.EffectiveTo()),
		Status:         string(c.Status()),
	}
}

func deviceFromDomain(d *device.Device) Device {
	return Device{
		ID:                    d.ID().String(),
		CategoryID:            d.CategoryID().String(),
		Location:              d.Location().String(),
		Status:                string(d.Status()),
		Public:                d.IsPublic(),
		ServingIntermediaryID: idString(d.ServingIntermediaryID()),
		CurrentLeaseID:        idString(d.CurrentLeaseID()),
		Version:               d.Version(),
	}
}

func auditFromQuery(r queries.GetAuditTrailQueryResponse) AuditEntry {
	return AuditEntry{
		ID:         r.ID.String(),
		Action:     r.Action,
		FromState:  r.FromState,
		ToState:    r.ToState,
		ActorID:    idString(r.ActorID),
		Note:       r.Note,
		OccurredAt: r.OccurredAt,
	}
}
