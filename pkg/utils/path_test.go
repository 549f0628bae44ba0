package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileExtension(t *testing.T) {
	assert.Equal(t, "py", FileExtension("python"))
	assert.Equal(t, "rs", FileExtension("rust"))
	assert.Equal(t, "cs", FileExtension("csharp"))
	assert.Equal(t, "rs", FileExtension("RUST"))
	assert.Equal(t, "txt", FileExtension("unknown-lang"))
	assert.Equal(t, "txt", FileExtension(""))
}

func TestFolderAndFilename_WithNumber(t *testing.T) {
	n := 42
	folder, filename := FolderAndFilename(&n, "Two Sum", "py")
	assert.Equal(t, "0042_two_sum", folder)
	assert.Equal(t, "0042_two_sum.py", filename)
}

func TestFolderAndFilename_WithoutNumber(t *testing.T) {
	folder, filename := FolderAndFilename(nil, "Two Sum", "go")
	assert.Equal(t, "two_sum", folder)
	assert.Equal(t, "two_sum.go", filename)
}

func TestFolderAndFilename_HyphensAndCase(t *testing.T) {
	n := 121
	folder, filename := FolderAndFilename(&n, "Best Time to Buy-and-Sell Stock", "py")
	assert.Equal(t, "0121_best_time_to_buy_and_sell_stock", folder)
	assert.Equal(t, "0121_best_time_to_buy_and_sell_stock.py", filename)
}

func TestFolderAndFilename_Deterministic(t *testing.T) {
	n := 7
	f1, n1 := FolderAndFilename(&n, "Reverse Integer", "cpp")
	f2, n2 := FolderAndFilename(&n, "Reverse Integer", "cpp")
	assert.Equal(t, f1, f2)
	assert.Equal(t, n1, n2)
}

func TestExtractProblemNumber_FromPrefix(t *testing.T) {
	num, name := ExtractProblemNumber("1. Two Sum", nil)
	assert.NotNil(t, num)
	assert.Equal(t, 1, *num)
	assert.Equal(t, "Two Sum", name)
}

func TestExtractProblemNumber_NoPrefix(t *testing.T) {
	num, name := ExtractProblemNumber("Two Sum", nil)
	assert.Nil(t, num)
	assert.Equal(t, "Two Sum", name)
}

func TestExtractProblemNumber_ExplicitWins(t *testing.T) {
	explicit := 99
	num, name := ExtractProblemNumber("1. Two Sum", &explicit)
	assert.Equal(t, 99, *num)
	assert.Equal(t, "1. Two Sum", name)
}
