package mealplan

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"mealplan-mcp/internal/model"
	"mealplan-mcp/internal/paths"
)

// Record is the lightweight metadata view of a stored meal plan.
type Record struct {
	Title    string   `json:"title"`
	Date     string   `json:"date"`
	MealType string   `json:"meal_type"`
	Cook     string   `json:"cook"`
	Dishes   []string `json:"dishes"`
}

// ContentRecord carries the full markdown artifact for a stored meal
// plan. It feeds the PDF export collaborator, which formats the content
// itself; cook and dish list are not broken out.
type ContentRecord struct {
	Title    string
	Date     string
	MealType string
	Content  string
}

// ParseError records one record skipped during a range walk because
// neither artifact could be parsed.
type ParseError struct {
	Path string
	Err  error
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Query answers date-range reads by walking the directory tree. It
// re-derives the naming convention from directory and file names rather
// than calling back into the store, so stale or hand-created trees still
// list correctly.
type Query struct {
	paths paths.Paths
}

// NewQuery creates a query over the given path layout.
func NewQuery(p paths.Paths) *Query {
	return &Query{paths: p}
}

var (
	dateDirPattern = regexp.MustCompile(`^(\d{2})-(\d{2})-(\d{4})$`)
	basePattern    = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}-(.+)$`)
)

// Range lists meal plans whose date falls within [start, end] inclusive,
// sorted by date, then chronological meal type, then title. Both bounds
// must be YYYY-MM-DD days (ErrInvalidDate otherwise); an inverted range
// yields an empty result, not an error. For each record the structured
// sidecar is preferred; the markdown artifact is the fallback source.
// Unparseable records are skipped and reported in the side channel.
func (q *Query) Range(start, end string) ([]Record, []ParseError, error) {
	startDay, endDay, err := ParseRange(start, end)
	if err != nil {
		return nil, nil, err
	}
	if endDay.Before(startDay) {
		return nil, nil, nil
	}

	var records []Record
	var skipped []ParseError
	err = q.walk(startDay, endDay, func(day time.Time, dir string) error {
		groups, err := groupArtifacts(dir)
		if err != nil {
			return err
		}
		for _, g := range groups {
			rec, perr := q.loadRecord(g, day)
			if perr != nil {
				skipped = append(skipped, *perr)
				continue
			}
			records = append(records, rec)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if oa, ob := model.MealTypeOrder(a.MealType), model.MealTypeOrder(b.MealType); oa != ob {
			return oa < ob
		}
		return a.Title < b.Title
	})
	return records, skipped, nil
}

// RangeWithContent lists meal plans in range with their full markdown
// content, in the same order as Range. When only the sidecar survives,
// the markdown is re-rendered from it so the export always has content.
func (q *Query) RangeWithContent(start, end string) ([]ContentRecord, []ParseError, error) {
	startDay, endDay, err := ParseRange(start, end)
	if err != nil {
		return nil, nil, err
	}
	if endDay.Before(startDay) {
		return nil, nil, nil
	}

	var records []ContentRecord
	var skipped []ParseError
	err = q.walk(startDay, endDay, func(day time.Time, dir string) error {
		groups, err := groupArtifacts(dir)
		if err != nil {
			return err
		}
		for _, g := range groups {
			rec, perr := q.loadContentRecord(g, day)
			if perr != nil {
				skipped = append(skipped, *perr)
				continue
			}
			records = append(records, rec)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if oa, ob := model.MealTypeOrder(a.MealType), model.MealTypeOrder(b.MealType); oa != ob {
			return oa < ob
		}
		return a.Title < b.Title
	})
	return records, skipped, nil
}

// walk visits every per-day directory in range: root → numeric year
// directories → month directories → MM-DD-YYYY date directories.
// Directories that don't match the naming convention are ignored.
func (q *Query) walk(start, end time.Time, visit func(day time.Time, dir string) error) error {
	years, err := os.ReadDir(q.paths.Root())
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading root directory: %w", err)
	}

	for _, year := range years {
		if !year.IsDir() || !isNumeric(year.Name()) {
			continue
		}
		yearDir := filepath.Join(q.paths.Root(), year.Name())
		months, err := os.ReadDir(yearDir)
		if err != nil {
			continue
		}
		for _, month := range months {
			if !month.IsDir() {
				continue
			}
			monthDir := filepath.Join(yearDir, month.Name())
			days, err := os.ReadDir(monthDir)
			if err != nil {
				continue
			}
			for _, dayEntry := range days {
				if !dayEntry.IsDir() {
					continue
				}
				day, ok := parseDateDir(dayEntry.Name())
				if !ok || day.Before(start) || day.After(end) {
					continue
				}
				if err := visit(day, filepath.Join(monthDir, dayEntry.Name())); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// artifactGroup pairs the two files that share one base name.
type artifactGroup struct {
	base     string
	mealType string
	mdPath   string
	jsonPath string
}

// groupArtifacts enumerates a day directory's .md/.json files and groups
// them by shared base name. Files whose base doesn't match the
// MM-DD-YYYY-{meal_type} convention are ignored.
func groupArtifacts(dir string) ([]artifactGroup, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	byBase := make(map[string]*artifactGroup)
	var order []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".md" && ext != ".json" {
			continue
		}
		base := strings.TrimSuffix(entry.Name(), ext)
		m := basePattern.FindStringSubmatch(base)
		if m == nil {
			continue
		}
		g, ok := byBase[base]
		if !ok {
			g = &artifactGroup{base: base, mealType: m[1]}
			byBase[base] = g
			order = append(order, base)
		}
		path := filepath.Join(dir, entry.Name())
		if ext == ".md" {
			g.mdPath = path
		} else {
			g.jsonPath = path
		}
	}

	groups := make([]artifactGroup, 0, len(order))
	for _, base := range order {
		groups = append(groups, *byBase[base])
	}
	return groups, nil
}

// loadRecord builds a Record from a group, preferring the sidecar.
func (q *Query) loadRecord(g artifactGroup, day time.Time) (Record, *ParseError) {
	dateStr := day.Format(paths.DayFormat)

	if g.jsonPath != "" {
		rec, err := parseSidecar(g.jsonPath, dateStr, g.mealType)
		if err == nil {
			return rec, nil
		}
		if g.mdPath == "" {
			return Record{}, &ParseError{Path: g.jsonPath, Err: err}
		}
		// Corrupt sidecar but the markdown artifact survives: fall
		// through to the fallback parser.
	}

	content, err := os.ReadFile(g.mdPath)
	if err != nil {
		return Record{}, &ParseError{Path: g.mdPath, Err: err}
	}
	p := ParseMarkdown(string(content))
	return Record{
		Title:    p.Title,
		Date:     dateStr,
		MealType: g.mealType,
		Cook:     p.Cook,
		Dishes:   p.Dishes,
	}, nil
}

// loadContentRecord builds a ContentRecord from a group, preferring the
// markdown artifact for content and the sidecar for the title.
func (q *Query) loadContentRecord(g artifactGroup, day time.Time) (ContentRecord, *ParseError) {
	rec, perr := q.loadRecord(g, day)
	if perr != nil {
		return ContentRecord{}, perr
	}

	var content string
	if g.mdPath != "" {
		data, err := os.ReadFile(g.mdPath)
		if err != nil {
			return ContentRecord{}, &ParseError{Path: g.mdPath, Err: err}
		}
		content = string(data)
	} else {
		mp, err := readSidecarPlan(g.jsonPath, day)
		if err != nil {
			return ContentRecord{}, &ParseError{Path: g.jsonPath, Err: err}
		}
		content = RenderMarkdown(mp)
	}

	return ContentRecord{
		Title:    rec.Title,
		Date:     rec.Date,
		MealType: rec.MealType,
		Content:  content,
	}, nil
}

// parseSidecar reads the structured artifact into a Record. Date and
// meal type come from the directory and filename, which are
// authoritative; title and cook are re-cleaned on the way in so
// hand-edited files get the same defaults as stored ones.
func parseSidecar(path, dateStr, mealType string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, err
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Record{}, err
	}

	dishes := make([]string, 0, len(doc.Dishes))
	for _, d := range doc.Dishes {
		dishes = append(dishes, d.Name)
	}

	cook := doc.Cook
	if strings.TrimSpace(cook) == "" {
		cook = model.DefaultCook
	}
	return Record{
		Title:    model.CleanName(doc.Title, model.DefaultTitle),
		Date:     dateStr,
		MealType: mealType,
		Cook:     cook,
		Dishes:   dishes,
	}, nil
}

// readSidecarPlan reconstructs a full MealPlan from the sidecar so the
// markdown can be re-rendered when the .md artifact is gone.
func readSidecarPlan(path string, day time.Time) (model.MealPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.MealPlan{}, err
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return model.MealPlan{}, err
	}
	return model.MealPlan{
		Date:     day,
		MealType: model.MealType(doc.MealType),
		Title:    doc.Title,
		Cook:     doc.Cook,
		Dishes:   doc.Dishes,
	}, nil
}

func parseDateDir(name string) (time.Time, bool) {
	m := dateDirPattern.FindStringSubmatch(name)
	if m == nil {
		return time.Time{}, false
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// Reject impossible dates that normalized (e.g. 02-30 became 03-02).
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, false
	}
	return t, true
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
