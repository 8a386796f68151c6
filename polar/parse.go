package polar

import (
	"bufio"
	"errors"
	"fmt"
	goio "io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/sgostarter/i/l"
	"github.com/spf13/cast"
)

var (
	// ErrReynoldsNotFound is returned when a file ends before its
	// "Mach = ... Re = ..." line.
	ErrReynoldsNotFound = errors.New("polar: Reynolds number line not found")
	// ErrHeaderNotFound is returned when a file ends before its column
	// header line.
	ErrHeaderNotFound = errors.New("polar: column header line not found")
)

// parseState is the position of the parser within a polar file. States only
// ever advance.
type parseState int

const (
	searchReynolds parseState = iota
	searchHeader
	readRows
)

// eofErr returns the error for running out of input in state s. readRows is
// the only state in which the input may end.
func (s parseState) eofErr() error {
	switch s {
	case searchReynolds:
		return ErrReynoldsNotFound
	case searchHeader:
		return ErrHeaderNotFound
	}
	return nil
}

// Parser reads polar files.
type Parser struct {
	logger l.Wrapper
}

// NewParser creates a Parser which reports every file it reads to logger.
// A nil logger discards the reports.
func NewParser(logger l.Wrapper) *Parser {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}
	return &Parser{logger.WithFields(l.StringField(l.ClsKey, "polarParser"))}
}

// Parse reads a single polar table from r. name is recorded as the table's
// File.
func (p *Parser) Parse(r goio.Reader, name string) (*Table, error) {
	t := &Table{File: name}
	rows := [][]float64{}
	state := searchReynolds

	sc := bufio.NewScanner(r)
	for lineNum := 1; sc.Scan(); lineNum++ {
		line := sc.Text()

		switch state {
		case searchReynolds:
			if !isReynoldsLine(line) {
				continue
			}
			if err := t.setConditions(line); err != nil {
				return nil, fmt.Errorf("%s:%d: %w", name, lineNum, err)
			}
			state = searchHeader

		case searchHeader:
			if !isHeaderLine(line) {
				continue
			}
			header, err := parseHeader(line)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", name, lineNum, err)
			}
			t.Header = header
			state = readRows

		case readRows:
			row, err := parseRow(line)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", name, lineNum, err)
			} else if row == nil {
				continue
			} else if len(row) != len(t.Header) {
				return nil, fmt.Errorf(
					"%s:%d: Row has %d values, but the header has %d "+
						"columns.", name, lineNum, len(row), len(t.Header),
				)
			}
			rows = append(rows, row)
		}
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if err := state.eofErr(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	t.Columns = transpose(t.Header, rows)

	p.logger.WithFields(
		l.StringField("file", name),
		l.StringField("reynolds", strconv.FormatFloat(t.Reynolds, 'g', -1, 64)),
		l.IntField("rows", len(rows)),
	).Debug("read polar")

	return t, nil
}

// ParseFile is identical to Parse, but reads from the file fname.
func (p *Parser) ParseFile(fname string) (*Table, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return p.Parse(f, fname)
}

// ParseFiles reads one table from each file and returns them sorted by
// Reynolds number.
func (p *Parser) ParseFiles(fnames []string) (Collection, error) {
	c := make(Collection, 0, len(fnames))
	for _, fname := range fnames {
		t, err := p.ParseFile(fname)
		if err != nil {
			return nil, err
		}
		c = append(c, t)
	}

	Sort(c)
	return c, nil
}

// isReynoldsLine returns true for lines which start with "mach =", ignoring
// case and the spacing around the '='.
func isReynoldsLine(line string) bool {
	s := strings.ToLower(strings.TrimSpace(line))
	if !strings.HasPrefix(s, "mach") {
		return false
	}
	return strings.HasPrefix(strings.TrimSpace(s[len("mach"):]), "=")
}

func isHeaderLine(line string) bool {
	s := strings.ToLower(line)
	return strings.Contains(s, AlphaColumn) && strings.Contains(s, "top xtr")
}

// setConditions reads the flow conditions from the Mach/Re/Ncrit line.
func (t *Table) setConditions(line string) error {
	kv, err := ParseKeyValues(line)
	if err != nil {
		return err
	}

	re, ok := kv["re"]
	if !ok {
		return fmt.Errorf("No 're' value in '%s'.", strings.TrimSpace(line))
	}
	t.Reynolds, t.Mach, t.NCrit = re, kv["mach"], kv["ncrit"]
	return nil
}

// ParseKeyValues parses a line of the form "k1 = v1  k2 = v2 ..." into a map
// from lower-cased keys to values. Spacing around the '=' signs is
// arbitrary, and whitespace inside a value is removed before it is parsed,
// so the XFOIL spelling "0.200 e 6" reads as 200000.
func ParseKeyValues(line string) (map[string]float64, error) {
	segs := strings.Split(strings.ToLower(line), "=")
	if len(segs) < 2 {
		return nil, fmt.Errorf(
			"'%s' contains no key = value pairs.", strings.TrimSpace(line),
		)
	}

	kv := map[string]float64{}
	key := lastField(segs[0])
	for i := 1; i < len(segs); i++ {
		// Every segment but the last is "<value> <next key>".
		fields := strings.Fields(segs[i])
		nextKey := ""
		if i < len(segs)-1 {
			if len(fields) < 2 {
				return nil, fmt.Errorf(
					"Missing key or value in '%s'.", strings.TrimSpace(line),
				)
			}
			nextKey = fields[len(fields)-1]
			fields = fields[:len(fields)-1]
		}

		if key == "" {
			return nil, fmt.Errorf(
				"Missing key in '%s'.", strings.TrimSpace(line),
			)
		}
		val, err := cast.ToFloat64E(strings.Join(fields, ""))
		if err != nil {
			return nil, fmt.Errorf(
				"Value of '%s' in '%s' is not a number.",
				key, strings.TrimSpace(line),
			)
		}

		kv[key] = val
		key = nextKey
	}

	return kv, nil
}

func lastField(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

func parseHeader(line string) ([]string, error) {
	header := []string{}
	seen := map[string]bool{}
	for _, tok := range strings.Split(line, ",") {
		name := strings.ToLower(strings.TrimSpace(tok))
		if name == "" {
			continue
		} else if seen[name] {
			return nil, fmt.Errorf("Column '%s' appears twice in header.", name)
		}
		seen[name] = true
		header = append(header, name)
	}

	if !seen[AlphaColumn] {
		return nil, fmt.Errorf("Header has no '%s' column.", AlphaColumn)
	}
	return header, nil
}

// parseRow returns nil for blank lines.
func parseRow(line string) ([]float64, error) {
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, line)
	if s == "" {
		return nil, nil
	}

	row := []float64{}
	for _, tok := range strings.Split(s, ",") {
		if tok == "" {
			continue
		}
		x, err := cast.ToFloat64E(tok)
		if err != nil {
			return nil, fmt.Errorf("'%s' is not a number.", tok)
		}
		row = append(row, x)
	}
	return row, nil
}

func transpose(header []string, rows [][]float64) map[string][]float64 {
	cols := make(map[string][]float64, len(header))
	for j, name := range header {
		col := make([]float64, len(rows))
		for i := range rows {
			col[i] = rows[i][j]
		}
		cols[name] = col
	}
	return cols
}
