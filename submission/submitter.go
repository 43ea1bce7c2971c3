package submission

import (
	"context"
	"io"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bmowen/webquote-backend/models"
	"github.com/bmowen/webquote-backend/pricing"
)

// State is the submitter's position in the pipeline.
type State string

const (
	StateIdle           State = "idle"
	StateValidating     State = "validating"
	StateUploadingAsset State = "uploading_asset"
	StateSubmitting     State = "submitting"
	StateSucceeded      State = "succeeded"
	StateFailed         State = "failed"
)

// DefaultMaxAssetSize caps the logo upload at 5 MiB.
const DefaultMaxAssetSize = 5 << 20

// Local-part@domain with at least one dot in the domain. "a@b" is rejected.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactInfo is what the client typed into the request form.
type ContactInfo struct {
	Name        string
	Email       string
	Domain      string
	Description string
	References  []string
}

// Asset is the logo attached to a submission. Content is read exactly once,
// during the upload step.
type Asset struct {
	FileName string
	Size     int64
	Content  io.Reader
}

// AssetUploader stores an image with an external host and returns its URL.
type AssetUploader interface {
	UploadImage(ctx context.Context, filename string, file io.Reader) (string, error)
}

// FormRelay forwards the final payload to the agency.
type FormRelay interface {
	Submit(ctx context.Context, fields url.Values) error
}

// Result is returned on a successful submission.
type Result struct {
	Reference   string    `json:"reference"`
	LogoURL     string    `json:"logoUrl,omitempty"`
	Summary     string    `json:"summary"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Submitter runs the quote-request pipeline: validate the contact fields,
// upload the logo when one is attached, then relay the payload. The two
// network calls are strictly sequential; the relay payload needs the logo
// URL, so an upload failure aborts the attempt with nothing sent. One
// submission at a time: a concurrent Submit returns ErrInFlight.
type Submitter struct {
	uploader     AssetUploader
	relay        FormRelay
	maxAssetSize int64
	log          zerolog.Logger
	now          func() time.Time

	busy sync.Mutex

	mu    sync.Mutex
	state State
}

func NewSubmitter(uploader AssetUploader, relay FormRelay, log zerolog.Logger) *Submitter {
	return &Submitter{
		uploader:     uploader,
		relay:        relay,
		maxAssetSize: DefaultMaxAssetSize,
		log:          log,
		now:          time.Now,
		state:        StateIdle,
	}
}

// SetMaxAssetSize overrides the logo size cap. Zero or negative keeps the
// default.
func (s *Submitter) SetMaxAssetSize(n int64) {
	if n > 0 {
		s.maxAssetSize = n
	}
}

// State reports the current pipeline position.
func (s *Submitter) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Submitter) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

// Submit runs one attempt end to end. Every attempt starts from scratch:
// validation re-runs, and an attached asset is re-uploaded even if a prior
// attempt got further.
func (s *Submitter) Submit(ctx context.Context, contact ContactInfo, breakdown models.Breakdown, asset *Asset) (*Result, error) {
	if !s.busy.TryLock() {
		return nil, ErrInFlight
	}
	defer s.busy.Unlock()

	s.setState(StateValidating)
	if err := validateContact(contact); err != nil {
		s.setState(StateFailed)
		return nil, err
	}

	logoURL := ""
	if asset != nil {
		if asset.Size > s.maxAssetSize {
			s.setState(StateFailed)
			return nil, &AssetTooLargeError{Size: asset.Size, Max: s.maxAssetSize}
		}
		s.setState(StateUploadingAsset)
		uploaded, err := s.uploader.UploadImage(ctx, asset.FileName, asset.Content)
		if err != nil {
			s.setState(StateFailed)
			s.log.Error().Err(err).Str("file", asset.FileName).Msg("logo upload failed")
			return nil, &AssetUploadError{Err: err}
		}
		logoURL = uploaded
	}

	s.setState(StateSubmitting)
	submittedAt := s.now().UTC()
	summary := pricing.RenderSummaryText(breakdown)
	fields := buildPayload(contact, breakdown, logoURL, summary, submittedAt)

	if err := s.relay.Submit(ctx, fields); err != nil {
		s.setState(StateFailed)
		s.log.Error().Err(err).Msg("form relay failed")
		return nil, &FormRelayError{Err: err}
	}

	s.setState(StateSucceeded)
	reference := uuid.New().String()
	s.log.Info().
		Str("reference", reference).
		Str("email", contact.Email).
		Msg("quote request submitted")

	return &Result{
		Reference:   reference,
		LogoURL:     logoURL,
		Summary:     summary,
		SubmittedAt: submittedAt,
	}, nil
}

func validateContact(contact ContactInfo) error {
	if strings.TrimSpace(contact.Name) == "" {
		return &ValidationError{Field: "name", Reason: "name is required"}
	}
	email := strings.TrimSpace(contact.Email)
	if email == "" {
		return &ValidationError{Field: "email", Reason: "email is required"}
	}
	if !emailPattern.MatchString(email) {
		return &ValidationError{Field: "email", Reason: "not a valid email address"}
	}
	return nil
}

// buildPayload assembles the flat field set the form relay expects. Both
// totals are duplicated under two field names; downstream templates read
// either alias.
func buildPayload(contact ContactInfo, b models.Breakdown, logoURL, summary string, submittedAt time.Time) url.Values {
	fields := url.Values{}

	fields.Set("name", contact.Name)
	fields.Set("email", contact.Email)
	fields.Set("domain", contact.Domain)
	fields.Set("description", contact.Description)
	fields.Set("websiteReferences", strings.Join(contact.References, ", "))

	if logoURL != "" {
		fields.Set("logoUrl", logoURL)
	}

	typeName := "Not selected"
	var basePrice int64
	deliveryTime := "Not specified"
	if b.WebsiteType != nil {
		typeName = b.WebsiteType.Name
		basePrice = b.WebsiteType.BasePrice
		deliveryTime = b.WebsiteType.DeliveryTime
	}
	fields.Set("websiteType", typeName)
	fields.Set("websitePrice", pricing.FormatPrice(basePrice))
	fields.Set("deliveryTime", deliveryTime)

	fields.Set("addOns", strings.Join(b.AddOnNames(), ", "))
	fields.Set("addOnsTotal", pricing.FormatPrice(b.AddOnsSubtotal()))

	planName := "Not selected"
	var planPrice int64
	if b.MaintenancePlan != nil {
		planName = b.MaintenancePlan.Name
		planPrice = b.MaintenancePlan.Price
	}
	fields.Set("maintenancePlan", planName)
	fields.Set("maintenancePrice", pricing.FormatPrice(planPrice)+"/month")

	fields.Set("oneTimeCost", pricing.FormatPrice(b.OneTimeTotal))
	fields.Set("monthlyCost", pricing.FormatPrice(b.MonthlyTotal))
	fields.Set("totalFirstPayment", pricing.FormatPrice(b.OneTimeTotal))
	fields.Set("ongoingMonthly", pricing.FormatPrice(b.MonthlyTotal))

	fields.Set("quoteSummary", summary)
	fields.Set("submittedAt", submittedAt.Format("Jan 2, 2006 3:04:05 PM"))
	fields.Set("_subject", "New Website Quote Request from "+contact.Name)

	return fields
}
