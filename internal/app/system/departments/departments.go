// internal/app/system/departments/departments.go

// Package departments holds the fixed, ordered catalog of department names.
//
// The catalog serves two purposes: it is the set of valid choices on the
// submission form, and it defines the canonical ordering of every
// department-grouped view and export. Reordering this list reorders both at
// once. Names no longer in the catalog (renamed or dissolved teams) remain
// valid on read and sort after all catalog entries, in the order they are
// first encountered.
package departments

// catalog is the office's department list in its agreed reporting order.
var catalog = []string{
	"교목실", "감사팀", "기획팀", "미래전략센터", "혁신지원사업단",
	"교무수업팀", "교무인사팀", "교육혁신센터", "학사학위센터",
	"학생복지팀", "장애학생지원센터", "학생상담센터", "사회공헌센터",
	"커뮤니케이션팀", "입학지원팀", "취창업진로지원센터", "산학운영팀",
	"RISE사업단", "현장실습지원센터", "일학습병행공동훈련센터",
	"총무팀", "시설안전팀", "국제교육팀", "글로벌커리어센터",
	"글로벌인재정주지원센터", "평생교육원", "도서관", "전산정보원", "SG캠퍼스사업단",
}

var rank = func() map[string]int {
	m := make(map[string]int, len(catalog))
	for i, name := range catalog {
		m[name] = i
	}
	return m
}()

// Catalog returns the department names in canonical order. The returned
// slice is a copy.
func Catalog() []string {
	out := make([]string, len(catalog))
	copy(out, catalog)
	return out
}

// IsValid reports whether name is a current catalog entry. Legacy names
// fail this check and are rejected for new submissions only.
func IsValid(name string) bool {
	_, ok := rank[name]
	return ok
}

// Rank returns the catalog position of name and whether it is present.
func Rank(name string) (int, bool) {
	r, ok := rank[name]
	return r, ok
}

// SortIndex returns ordering keys for a sequence of department names as they
// were encountered: catalog members keep their catalog rank, out-of-catalog
// names are ranked after all catalog entries in first-encountered order.
//
// It returns a less(i, j) function over the original indexes, suitable for
// sort.SliceStable so that rows within one department keep their sheet order.
func SortIndex(names []string) func(i, j int) bool {
	legacy := make(map[string]int)
	keys := make([]int, len(names))
	for i, name := range names {
		if r, ok := rank[name]; ok {
			keys[i] = r
			continue
		}
		lr, seen := legacy[name]
		if !seen {
			lr = len(legacy)
			legacy[name] = lr
		}
		keys[i] = len(catalog) + lr
	}
	return func(i, j int) bool { return keys[i] < keys[j] }
}
