// Package android discovers the Android SDK/NDK environment and generates
// the Android Studio project for an app.
package android

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// EnvErrorKind classifies environment discovery failures. SDK and NDK
// absence are fixable by the user and treated as recoverable by the
// orchestrator; everything else is fatal.
type EnvErrorKind int

const (
	EnvGeneral EnvErrorKind = iota
	EnvSdkNotFound
	EnvNdkNotFound
)

// EnvError is a classified Android environment failure.
type EnvError struct {
	Kind    EnvErrorKind
	Message string
	Cause   error
}

func (e *EnvError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *EnvError) Unwrap() error {
	return e.Cause
}

// SdkOrNdkIssue reports whether the failure is a fixable SDK/NDK absence.
func (e *EnvError) SdkOrNdkIssue() bool {
	return e.Kind == EnvSdkNotFound || e.Kind == EnvNdkNotFound
}

// Remediation returns user-facing instructions for fixable failures.
func (e *EnvError) Remediation() string {
	switch e.Kind {
	case EnvSdkNotFound:
		return "Install the Android SDK and set ANDROID_HOME (or ANDROID_SDK_ROOT) to its location."
	case EnvNdkNotFound:
		return "Install an NDK through the Android SDK manager, or set NDK_HOME to an existing NDK."
	default:
		return e.Message
	}
}

// Env is a discovered Android build environment.
type Env struct {
	SdkRoot string
	NdkRoot string
}

// NewEnv locates the SDK via ANDROID_HOME / ANDROID_SDK_ROOT and an NDK via
// NDK_HOME or the newest ndk/<version> directory under the SDK.
func NewEnv() (*Env, *EnvError) {
	sdkRoot := os.Getenv("ANDROID_HOME")
	if sdkRoot == "" {
		sdkRoot = os.Getenv("ANDROID_SDK_ROOT")
	}
	if sdkRoot == "" {
		return nil, &EnvError{
			Kind:    EnvSdkNotFound,
			Message: "neither ANDROID_HOME nor ANDROID_SDK_ROOT is set",
		}
	}
	if err := checkDir(sdkRoot); err != nil {
		if os.IsNotExist(err) {
			return nil, &EnvError{
				Kind:    EnvSdkNotFound,
				Message: fmt.Sprintf("Android SDK directory %s does not exist", sdkRoot),
			}
		}
		return nil, &EnvError{
			Kind:    EnvGeneral,
			Message: fmt.Sprintf("cannot access Android SDK directory %s", sdkRoot),
			Cause:   err,
		}
	}

	ndkRoot, envErr := findNdk(sdkRoot)
	if envErr != nil {
		return nil, envErr
	}

	return &Env{SdkRoot: sdkRoot, NdkRoot: ndkRoot}, nil
}

func findNdk(sdkRoot string) (string, *EnvError) {
	if ndkHome := os.Getenv("NDK_HOME"); ndkHome != "" {
		if err := checkDir(ndkHome); err != nil {
			if os.IsNotExist(err) {
				return "", &EnvError{
					Kind:    EnvNdkNotFound,
					Message: fmt.Sprintf("NDK_HOME points at %s, which does not exist", ndkHome),
				}
			}
			return "", &EnvError{
				Kind:    EnvGeneral,
				Message: fmt.Sprintf("cannot access NDK directory %s", ndkHome),
				Cause:   err,
			}
		}
		return ndkHome, nil
	}

	ndkDir := filepath.Join(sdkRoot, "ndk")
	entries, err := os.ReadDir(ndkDir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &EnvError{
				Kind:    EnvNdkNotFound,
				Message: fmt.Sprintf("no NDK installed under %s", ndkDir),
			}
		}
		return "", &EnvError{
			Kind:    EnvGeneral,
			Message: fmt.Sprintf("cannot read NDK directory %s", ndkDir),
			Cause:   err,
		}
	}

	var versions []string
	for _, entry := range entries {
		if entry.IsDir() {
			versions = append(versions, entry.Name())
		}
	}
	if len(versions) == 0 {
		return "", &EnvError{
			Kind:    EnvNdkNotFound,
			Message: fmt.Sprintf("no NDK installed under %s", ndkDir),
		}
	}

	// Version directories sort lexically close enough; the last one wins.
	sort.Strings(versions)
	return filepath.Join(ndkDir, versions[len(versions)-1]), nil
}

func checkDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}
