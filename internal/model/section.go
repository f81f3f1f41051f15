package model

// DefaultCapacity Количество секций колеса по умолчанию
const DefaultCapacity = 20

// StatementsPerSection Количество утверждений в одной секции
const StatementsPerSection = 3

// Statements Три утверждения секции
type Statements [StatementsPerSection]string

// Section Одна секция колеса
type Section struct {
	Statements Statements
}

// Filled Секция считается заполненной, если первое утверждение не пустое
func (s Section) Filled() bool {
	return s.Statements[0] != ""
}

// NewSections Создать последовательность из n пустых секций
func NewSections(n int) []Section {
	if n < 0 {
		n = 0
	}
	return make([]Section, n)
}

// CloneSections Копия последовательности секций
func CloneSections(sections []Section) []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}

// CountFilled Количество заполненных секций
func CountFilled(sections []Section) int {
	count := 0
	for _, s := range sections {
		if s.Filled() {
			count++
		}
	}
	return count
}
