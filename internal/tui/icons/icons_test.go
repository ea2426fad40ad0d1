package icons

import "testing"

func TestCurrentDefaultsToUnicode(t *testing.T) {
	t.Setenv("ORCHTOP_ASCII", "")
	t.Setenv("LC_ALL", "en_US.UTF-8")

	if Current() != Unicode {
		t.Error("UTF-8 locale should get the Unicode set")
	}
}

func TestASCIIForced(t *testing.T) {
	t.Setenv("ORCHTOP_ASCII", "1")

	if Current() != ASCII {
		t.Error("ORCHTOP_ASCII=1 must force the ASCII set")
	}
}

func TestASCIIForNonUTF8Locale(t *testing.T) {
	t.Setenv("ORCHTOP_ASCII", "")
	t.Setenv("LC_ALL", "POSIX")
	t.Setenv("LC_CTYPE", "")
	t.Setenv("LANG", "")

	if Current() != ASCII {
		t.Error("non-UTF-8 locale should get the ASCII set")
	}
}
