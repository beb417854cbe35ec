package reportqa_test

import (
	"testing"

	"github.com/fwojciec/reportqa"
	"github.com/stretchr/testify/assert"
)

func TestDocument_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires company name", func(t *testing.T) {
		t.Parallel()

		err := (&reportqa.Document{FilePath: "a.pdf"}).Validate()

		assert.Equal(t, reportqa.EINVALID, reportqa.ErrorCode(err))
		assert.Contains(t, reportqa.ErrorMessage(err), "company name")
	})

	t.Run("requires file path", func(t *testing.T) {
		t.Parallel()

		err := (&reportqa.Document{CompanyName: "A"}).Validate()

		assert.Equal(t, reportqa.EINVALID, reportqa.ErrorCode(err))
		assert.Contains(t, reportqa.ErrorMessage(err), "file path")
	})

	t.Run("accepts valid document", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, (&reportqa.Document{CompanyName: "A", FilePath: "a.pdf"}).Validate())
	})
}
