package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir", "nested")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	// Create directory
	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	// Directory should now exist
	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetHomePicturesDir(t *testing.T) {
	picturesDir, err := GetHomePicturesDir()
	if err != nil {
		t.Fatalf("Failed to get pictures directory: %v", err)
	}

	if picturesDir == "" {
		t.Fatal("Pictures directory is empty")
	}

	// Should end with "Pictures"
	if filepath.Base(picturesDir) != "Pictures" {
		t.Errorf("Expected directory to end with 'Pictures', got: %s", picturesDir)
	}
}

func TestIsSupportedImage(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"cat.png", true},
		{"/tmp/Cat.JPG", true},
		{"photo.jpeg", true},
		{"anim.gif", true},
		{"modern.webp", true},
		{"old.bmp", true},
		{"scan.tiff", true},
		{"scan.tif", true},
		{"notes.txt", false},
		{"video.mp4", false},
		{"noext", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsSupportedImage(tt.path); got != tt.expected {
				t.Errorf("IsSupportedImage(%q) = %v, expected %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestGenerateExportPath(t *testing.T) {
	dir := t.TempDir()

	first, err := GenerateExportPath(dir, "/photos/cat.jpg")
	if err != nil {
		t.Fatalf("GenerateExportPath() error: %v", err)
	}
	if expected := filepath.Join(dir, "cat-meme.png"); first != expected {
		t.Errorf("GenerateExportPath() = %s, expected %s", first, expected)
	}

	if err := os.WriteFile(first, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	second, err := GenerateExportPath(dir, "/photos/cat.jpg")
	if err != nil {
		t.Fatalf("GenerateExportPath() error: %v", err)
	}
	if expected := filepath.Join(dir, "cat-meme-2.png"); second != expected {
		t.Errorf("GenerateExportPath() = %s, expected %s", second, expected)
	}

	os.WriteFile(second, []byte("x"), 0644)
	third, _ := GenerateExportPath(dir, "/photos/cat.jpg")
	if expected := filepath.Join(dir, "cat-meme-3.png"); third != expected {
		t.Errorf("GenerateExportPath() = %s, expected %s", third, expected)
	}
}

func TestGenerateExportPath_NoSource(t *testing.T) {
	dir := t.TempDir()

	path, err := GenerateExportPath(dir, "")
	if err != nil {
		t.Fatalf("GenerateExportPath() error: %v", err)
	}
	if expected := filepath.Join(dir, DefaultBaseName+ExportSuffix+ExportExtension); path != expected {
		t.Errorf("GenerateExportPath() = %s, expected %s", path, expected)
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	tempDir := t.TempDir()
	nonExistentFile := filepath.Join(tempDir, "nonexistent.png")

	err := OpenFileInManager(nonExistentFile)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}

	// Check that error contains the expected message
	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}

func TestOpenFileWithDefaultApp_EmptyPath(t *testing.T) {
	err := OpenFileWithDefaultApp("")
	if err == nil {
		t.Fatal("Expected error for empty path, got nil")
	}
	if !strings.Contains(err.Error(), "file path is empty") {
		t.Errorf("Unexpected error: %v", err)
	}
}
