package report

import (
	"encoding/json"
	"io"
	"time"

	"go.trai.ch/viewgraph/internal/app"
	"go.trai.ch/viewgraph/internal/core/domain"
)

type configurationJSON struct {
	Name     string   `json:"name"`
	Total    int      `json:"total"`
	Retained int      `json:"retained"`
	Missing  []string `json:"missing,omitempty"`
}

type pruneJSON struct {
	View           string              `json:"view"`
	Invalid        []domain.UniqueID   `json:"invalid"`
	Removed        int                 `json:"removed"`
	Configurations []configurationJSON `json:"configurations"`
}

type windowJSON struct {
	Name  string `json:"name,omitempty"`
	Empty bool   `json:"empty,omitempty"`
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

type validityJSON struct {
	View           string       `json:"view"`
	At             time.Time    `json:"at"`
	Valid          bool         `json:"valid"`
	Window         windowJSON   `json:"window"`
	Configurations []windowJSON `json:"configurations"`
}

type entryJSON struct {
	Reference string          `json:"reference"`
	Resolved  domain.UniqueID `json:"resolved"`
}

type changeJSON struct {
	Reference string          `json:"reference"`
	Compiled  domain.UniqueID `json:"compiled"`
	Current   domain.UniqueID `json:"current"`
}

type resolveJSON struct {
	View              string            `json:"view"`
	VersionCorrection string            `json:"versionCorrection"`
	Entries           []entryJSON       `json:"entries"`
	Changed           []changeJSON      `json:"changed,omitempty"`
	Unresolved        []string          `json:"unresolved,omitempty"`
	Expired           []domain.UniqueID `json:"expired,omitempty"`
	Touched           int               `json:"touched,omitzero"`
}

// JSON writes reports as indented JSON documents, one per call.
type JSON struct {
	enc *json.Encoder
}

// NewJSON creates a JSON report writer.
func NewJSON(w io.Writer) *JSON {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return &JSON{enc: enc}
}

// Prune writes a prune report.
func (j *JSON) Prune(rep *app.PruneReport) error {
	doc := pruneJSON{
		View:           rep.View,
		Invalid:        nonNil(rep.Invalid),
		Removed:        rep.Removed(),
		Configurations: make([]configurationJSON, len(rep.Configurations)),
	}
	for i, c := range rep.Configurations {
		doc.Configurations[i] = configurationJSON{Name: c.Name, Total: c.Total, Retained: c.Retained}
		for _, req := range c.Missing {
			doc.Configurations[i].Missing = append(doc.Configurations[i].Missing, req.String())
		}
	}
	return j.enc.Encode(doc)
}

// Validity writes a validity report.
func (j *JSON) Validity(rep *app.ValidityReport) error {
	doc := validityJSON{
		View:           rep.View,
		At:             rep.At.UTC(),
		Valid:          rep.Valid,
		Window:         window("", rep.Window),
		Configurations: make([]windowJSON, len(rep.Configurations)),
	}
	for i, c := range rep.Configurations {
		doc.Configurations[i] = window(c.Name, c.Window)
	}
	return j.enc.Encode(doc)
}

// Resolve writes a resolve report.
func (j *JSON) Resolve(rep *app.ResolveReport) error {
	doc := resolveJSON{
		View:              rep.View,
		VersionCorrection: rep.VersionCorrection.String(),
		Entries:           make([]entryJSON, len(rep.Entries)),
		Expired:           rep.Expired,
		Touched:           rep.Touched,
	}
	for i, e := range rep.Entries {
		doc.Entries[i] = entryJSON{Reference: e.Reference.String(), Resolved: e.Resolved}
	}
	for _, c := range rep.Changed {
		doc.Changed = append(doc.Changed, changeJSON{
			Reference: c.Reference.String(),
			Compiled:  c.Compiled,
			Current:   c.Current,
		})
	}
	for _, ref := range rep.Unresolved {
		doc.Unresolved = append(doc.Unresolved, ref.String())
	}
	return j.enc.Encode(doc)
}

func window(name string, w domain.ValidityWindow) windowJSON {
	out := windowJSON{Name: name, Empty: w.IsEmpty()}
	if w.IsEmpty() {
		return out
	}
	if t, ok := w.Start().Time(); ok {
		out.Start = t.UTC().Format(time.RFC3339)
	}
	if t, ok := w.End().Time(); ok {
		out.End = t.UTC().Format(time.RFC3339)
	}
	return out
}

func nonNil(ids []domain.UniqueID) []domain.UniqueID {
	if ids == nil {
		return []domain.UniqueID{}
	}
	return ids
}
