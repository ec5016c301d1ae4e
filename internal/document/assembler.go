package document

import (
	"fmt"
	"strings"
	"time"

	"formalgen/internal/lookup"
)

const (
	defaultReferenceEN = "BISAG-N/Office Order/2026/"
	defaultReferenceHI = "बायसेग-एन/कार्यालय आदेश/2026/"
)

// OfficeOrderForm carries the raw office-order form values.
type OfficeOrderForm struct {
	Language     string
	Date         string
	Reference    string
	Body         string
	FromPosition string
	ToRecipients []string
}

// CircularForm carries the raw circular form values.
type CircularForm struct {
	Language     string
	Date         string
	Subject      string
	Body         string
	FromPosition string
	ToIDs        []string
}

// Assembler merges form values with the lookup store into document records.
type Assembler struct {
	store *lookup.Store
	now   func() time.Time
}

// NewAssembler creates an Assembler. now may be nil, in which case the
// system clock is used; tests inject a fixed clock.
func NewAssembler(store *lookup.Store, now func() time.Time) *Assembler {
	if now == nil {
		now = time.Now
	}
	return &Assembler{store: store, now: now}
}

func (a *Assembler) resolveDate(raw string) string {
	if raw == "" {
		return a.now().Format("02-01-2006")
	}
	return FormatDate(raw)
}

// OfficeOrder assembles an office-order record. An unknown designation key
// in the from or to fields fails the whole assembly.
func (a *Assembler) OfficeOrder(form OfficeOrderForm) (OfficeOrder, error) {
	lang := lookup.ParseLanguage(form.Language)

	reference := strings.TrimSpace(form.Reference)
	if reference == "" {
		reference = defaultReferenceEN
		if lang == lookup.LangHI {
			reference = defaultReferenceHI
		}
	}

	from, err := a.store.Designation(form.FromPosition, lang)
	if err != nil {
		return OfficeOrder{}, fmt.Errorf("resolve from: %w", err)
	}

	to := make([]string, 0, len(form.ToRecipients))
	for _, key := range form.ToRecipients {
		title, err := a.store.Designation(key, lang)
		if err != nil {
			return OfficeOrder{}, fmt.Errorf("resolve to: %w", err)
		}
		to = append(to, title)
	}

	return OfficeOrder{
		Language:  lang,
		Header:    a.store.OrderHeader(lang),
		Title:     a.store.OrderTitle(lang),
		Reference: reference,
		Date:      a.resolveDate(form.Date),
		Body:      strings.TrimSpace(form.Body),
		From:      from,
		To:        to,
	}, nil
}

// Circular assembles a circular record. The from designation is optional;
// recipients are kept in people-directory order regardless of the order the
// ids were submitted in. Ids not present in the directory are ignored.
func (a *Assembler) Circular(form CircularForm) (Circular, error) {
	lang := lookup.ParseLanguage(form.Language)

	from := ""
	if form.FromPosition != "" {
		title, err := a.store.Designation(form.FromPosition, lang)
		if err != nil {
			return Circular{}, fmt.Errorf("resolve from: %w", err)
		}
		from = title
	}

	wanted := make(map[string]struct{}, len(form.ToIDs))
	for _, id := range form.ToIDs {
		wanted[id] = struct{}{}
	}

	var toPeople []lookup.Person
	for _, p := range a.store.People() {
		if _, ok := wanted[fmt.Sprint(p.ID)]; ok {
			toPeople = append(toPeople, p)
		}
	}

	return Circular{
		Language: lang,
		Header:   a.store.CircularHeader(lang),
		Date:     a.resolveDate(form.Date),
		Subject:  strings.TrimSpace(form.Subject),
		Body:     strings.TrimSpace(form.Body),
		From:     from,
		ToPeople: toPeople,
	}, nil
}
