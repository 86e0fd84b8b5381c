package memory_test

import (
	"testing"

	"github.com/secmon-lab/codeql-fly/pkg/repository/memory"
	"github.com/secmon-lab/codeql-fly/pkg/repository/testhelper"
)

func TestMemoryRepository(t *testing.T) {
	repo := memory.New()
	testhelper.TestAll(t, repo)
}
