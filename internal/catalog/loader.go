package catalog

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/interview-prep/internal/schemas"
	"github.com/jonathan/interview-prep/internal/types"
)

// Expected CSV column headers.
const (
	colJobRole      = "Job_Role"
	colKeySkills    = "Key_Skills"
	colQuestionType = "Question_Type"
	colQuestion     = "Question"
	colDifficulty   = "Difficulty" // tolerated but ignored; difficulty is always computed
)

var validate = validator.New()

// LoadRoles loads the job role catalog from a CSV file with columns
// Job_Role,Key_Skills (Key_Skills is a comma-separated list), or from a JSON
// file validated against the role catalog schema. The format is chosen by
// file extension.
func LoadRoles(path string) ([]types.Role, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return loadRolesJSON(path)
	}
	return loadRolesCSV(path)
}

// LoadQuestions loads the question catalog from a CSV file with columns
// Job_Role,Question_Type,Question (a Difficulty column may be present and is
// ignored), or from a JSON file validated against the question catalog
// schema.
func LoadQuestions(path string) ([]types.Question, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return loadQuestionsJSON(path)
	}
	return loadQuestionsCSV(path)
}

// LoadVocabulary loads a flat skill vocabulary file, one term per line.
// Blank lines and lines starting with '#' are skipped.
func LoadVocabulary(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "cannot open vocabulary file", Cause: err}
	}
	defer f.Close()

	var terms []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		terms = append(terms, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, &LoadError{Path: path, Message: "cannot read vocabulary file", Cause: err}
	}
	if len(terms) == 0 {
		return nil, &LoadError{Path: path, Message: "vocabulary file contains no terms"}
	}
	return NewVocabulary(terms), nil
}

func loadRolesCSV(path string) ([]types.Role, error) {
	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	roleIdx, ok := header[strings.ToLower(colJobRole)]
	if !ok {
		return nil, &LoadError{Path: path, Message: fmt.Sprintf("missing required column %q", colJobRole)}
	}
	skillsIdx, ok := header[strings.ToLower(colKeySkills)]
	if !ok {
		return nil, &LoadError{Path: path, Message: fmt.Sprintf("missing required column %q", colKeySkills)}
	}

	roles := make([]types.Role, 0, len(rows))
	for i, row := range rows {
		name := strings.TrimSpace(row[roleIdx])
		skills := splitSkillList(row[skillsIdx])
		role := types.Role{Name: name, RequiredSkills: skills}
		if err := validate.Struct(&role); err != nil {
			return nil, &RecordError{Path: path, Row: i + 2, Message: err.Error()}
		}
		roles = append(roles, role)
	}
	if len(roles) == 0 {
		return nil, &LoadError{Path: path, Message: "role catalog contains no records"}
	}
	return roles, nil
}

func loadQuestionsCSV(path string) ([]types.Question, error) {
	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	roleIdx, ok := header[strings.ToLower(colJobRole)]
	if !ok {
		return nil, &LoadError{Path: path, Message: fmt.Sprintf("missing required column %q", colJobRole)}
	}
	typeIdx, ok := header[strings.ToLower(colQuestionType)]
	if !ok {
		return nil, &LoadError{Path: path, Message: fmt.Sprintf("missing required column %q", colQuestionType)}
	}
	textIdx, ok := header[strings.ToLower(colQuestion)]
	if !ok {
		return nil, &LoadError{Path: path, Message: fmt.Sprintf("missing required column %q", colQuestion)}
	}

	questions := make([]types.Question, 0, len(rows))
	for i, row := range rows {
		q := types.Question{
			Role:     strings.TrimSpace(row[roleIdx]),
			Category: types.Category(strings.TrimSpace(row[typeIdx])),
			Text:     strings.TrimSpace(row[textIdx]),
		}
		if err := validate.Struct(&q); err != nil {
			return nil, &RecordError{Path: path, Row: i + 2, Message: err.Error()}
		}
		if !types.ValidCategory(q.Category) {
			return nil, &RecordError{Path: path, Row: i + 2, Message: fmt.Sprintf("unknown question category %q", q.Category)}
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// readCSV reads a CSV file, returning its data rows and a lowercase
// header-name -> column-index map. Blank rows are skipped. Rows shorter than
// the header are rejected as malformed.
func readCSV(path string) ([][]string, map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &LoadError{Path: path, Message: "cannot open catalog file", Cause: err}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1 // row width is checked below, against the header
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, &LoadError{Path: path, Message: "cannot parse CSV", Cause: err}
	}
	if len(records) == 0 {
		return nil, nil, &LoadError{Path: path, Message: "catalog file is empty"}
	}

	header := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var rows [][]string
	for i, record := range records[1:] {
		if isBlankRow(record) {
			continue
		}
		if len(record) < len(records[0]) {
			return nil, nil, &RecordError{Path: path, Row: i + 2, Message: "row has fewer fields than the header"}
		}
		rows = append(rows, record)
	}
	return rows, header, nil
}

func isBlankRow(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

// splitSkillList splits a comma-separated skill list, trimming whitespace and
// dropping empty entries. Duplicates are kept; the matcher deduplicates.
func splitSkillList(raw string) []string {
	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if s := strings.TrimSpace(part); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// roleCatalogJSON mirrors the role catalog JSON document shape.
type roleCatalogJSON struct {
	Roles []struct {
		Name      string   `json:"name"`
		KeySkills []string `json:"key_skills"`
	} `json:"roles"`
}

// questionCatalogJSON mirrors the question catalog JSON document shape.
type questionCatalogJSON struct {
	Questions []struct {
		Role     string `json:"role"`
		Category string `json:"category"`
		Text     string `json:"text"`
	} `json:"questions"`
}

func loadRolesJSON(path string) ([]types.Role, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "cannot read catalog file", Cause: err}
	}
	if err := schemas.ValidateRoleCatalog(data); err != nil {
		return nil, &LoadError{Path: path, Message: "role catalog failed schema validation", Cause: err}
	}

	var doc roleCatalogJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Path: path, Message: "cannot parse JSON", Cause: err}
	}

	roles := make([]types.Role, 0, len(doc.Roles))
	for i, r := range doc.Roles {
		role := types.Role{Name: strings.TrimSpace(r.Name), RequiredSkills: r.KeySkills}
		if err := validate.Struct(&role); err != nil {
			return nil, &RecordError{Path: path, Row: i + 1, Message: err.Error()}
		}
		roles = append(roles, role)
	}
	if len(roles) == 0 {
		return nil, &LoadError{Path: path, Message: "role catalog contains no records"}
	}
	return roles, nil
}

func loadQuestionsJSON(path string) ([]types.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "cannot read catalog file", Cause: err}
	}
	if err := schemas.ValidateQuestionCatalog(data); err != nil {
		return nil, &LoadError{Path: path, Message: "question catalog failed schema validation", Cause: err}
	}

	var doc questionCatalogJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Path: path, Message: "cannot parse JSON", Cause: err}
	}

	questions := make([]types.Question, 0, len(doc.Questions))
	for i, q := range doc.Questions {
		question := types.Question{
			Role:     strings.TrimSpace(q.Role),
			Category: types.Category(strings.TrimSpace(q.Category)),
			Text:     strings.TrimSpace(q.Text),
		}
		if err := validate.Struct(&question); err != nil {
			return nil, &RecordError{Path: path, Row: i + 1, Message: err.Error()}
		}
		if !types.ValidCategory(question.Category) {
			return nil, &RecordError{Path: path, Row: i + 1, Message: fmt.Sprintf("unknown question category %q", question.Category)}
		}
		questions = append(questions, question)
	}
	return questions, nil
}
