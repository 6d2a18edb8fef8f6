package models

// Table is an ordered sequence of flat records. A nil record stands for an
// array element that was not an object; it contributes no keys and renders
// as a row of empty cells.
type Table struct {
	Records []*JSONObject
}

// Header returns the union of all record keys ordered by first appearance.
func (t Table) Header() []string {
	seen := make(map[string]struct{})
	header := make([]string, 0)
	for _, rec := range t.Records {
		for key := range rec.All() {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			header = append(header, key)
		}
	}
	return header
}

// Array returns the table as a JSON array of its records. Nil records become
// empty objects.
func (t Table) Array() JSONArray {
	arr := make(JSONArray, len(t.Records))
	for i, rec := range t.Records {
		if rec == nil {
			rec = NewObject()
		}
		arr[i] = rec
	}
	return arr
}
