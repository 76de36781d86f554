package demo

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/leengari/tabledb/internal/store"
	"github.com/spf13/afero"
	"gotest.tools/v3/assert"
)

func TestRun(t *testing.T) {
	fs := afero.NewMemMapFs()
	var out bytes.Buffer

	err := Run(context.Background(), &out, Options{
		Location: "studentsdb.txt",
		NewStore: func() *store.Store { return store.New(store.Options{Fs: fs}) },
	})
	assert.NilError(t, err)

	got := out.String()
	afterDeletes := got[strings.Index(got, "Records After Deletions:"):strings.Index(got, "Records in Courses Table:")]
	assert.Equal(t, afterDeletes, "Records After Deletions:\n"+
		"Table: students\n"+
		"\tid\tname\tage\t\n"+
		"\t2\tBob\t22\t\n"+
		"\t3\tCharles\t19\t\n"+
		"\t4\tDiana\t24\t\n"+
		"\n")

	// The tab-bearing semesters split on reload
	assert.Assert(t, strings.Contains(got, "Reload stopped early: line"))
	assert.Assert(t, strings.Contains(got, "invalid number of values for table enrollment: expected 3, got 4"))

	reloaded := got[strings.Index(got, "Records Loaded From File:"):]
	assert.Assert(t, strings.Contains(reloaded, "\t101\tMathematics\t4\t\n"))
	assert.Assert(t, strings.Contains(reloaded, "Table: enrollment\n\tstudent_id\tcourse_id\tsemester\t\n"))

	exists, err := afero.Exists(fs, "studentsdb.txt")
	assert.NilError(t, err)
	assert.Assert(t, exists)
}
