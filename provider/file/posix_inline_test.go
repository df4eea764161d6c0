package file

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPosixModeAndSize(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "f")
	if err := os.WriteFile(name, []byte("hello"), 0o640); err != nil {
		t.Fatal(err)
	}

	p := Posix{}

	modeOut, err := p.Mode(name)
	if err != nil {
		t.Fatal(err)
	}
	mode, err := modeOut.ToU32()
	if err != nil {
		t.Fatal(err)
	}
	if mode != 0o640 {
		t.Errorf("Mode() = %o, want %o", mode, 0o640)
	}

	sizeOut, err := p.Size(name)
	if err != nil {
		t.Fatal(err)
	}
	size, err := sizeOut.ToI64()
	if err != nil {
		t.Fatal(err)
	}
	if size != 5 {
		t.Errorf("Size() = %d, want 5", size)
	}
}

func TestPosixIsFileAndIsDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	p := Posix{}

	isFile, err := p.IsFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := isFile.ToBool(); !v {
		t.Error("expected IsFile true for a regular file")
	}

	isDir, err := p.IsDirectory(dir)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := isDir.ToBool(); !v {
		t.Error("expected IsDirectory true for a directory")
	}

	isDirOnFile, err := p.IsDirectory(file)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := isDirOnFile.ToBool(); v {
		t.Error("expected IsDirectory false for a regular file")
	}
}

func TestPosixExistNonexistentIsFalseNotError(t *testing.T) {
	p := Posix{}
	out, err := p.Exist(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := out.ToBool(); v {
		t.Error("expected Exist false for a nonexistent path")
	}
}

func TestPosixContentsAndChecksums(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "f")
	if err := os.WriteFile(name, []byte("hello world"), 0o644); err != nil {
		t.Fatal(err)
	}

	p := Posix{}

	contents, err := p.Contents(name)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := contents.ToText(); v != "hello world" {
		t.Errorf("Contents() = %q, want %q", v, "hello world")
	}

	md5Out, err := p.MD5Sum(name)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := md5Out.ToText(); v != "5eb63bbbe01eeed093cb22bb8f5acdc3" {
		t.Errorf("MD5Sum() = %q, want the known digest of %q", v, "hello world")
	}

	sha256Out, err := p.SHA256Sum(name)
	if err != nil {
		t.Fatal(err)
	}
	want := "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
	if v, _ := sha256Out.ToText(); v != want {
		t.Errorf("SHA256Sum() = %q, want %q", v, want)
	}
}

func TestPosixIsSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	link := filepath.Join(dir, "link")
	if err := os.WriteFile(target, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(target, link); err != nil {
		t.Fatal(err)
	}

	p := Posix{}

	out, err := p.IsSymlink(link)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := out.ToBool(); !v {
		t.Error("expected IsSymlink true")
	}

	linkedTo, err := p.LinkedTo(link)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := linkedTo.ToText(); v != target {
		t.Errorf("LinkedTo() = %q, want %q", v, target)
	}
}
