package demo

import (
	"fmt"
	"io"
	"strings"

	"github.com/nodeflow/reactor"
)

// RunForm drives a three-field signup form through a scripted sequence of
// edits, printing the combined validity on every change. It exercises a
// diamond of validation rules feeding a single formValid computed, and
// exception recovery: an intentionally malformed password length check
// panics on one edit; fixing the password alone does not rerun the
// validator, and a later email edit redispatches it and it recovers.
func RunForm(w io.Writer) {
	g := reactor.NewGraph()

	email := reactor.NewSource(g, "")
	password := reactor.NewSource(g, "")
	confirmPassword := reactor.NewSource(g, "")

	emailValid := reactor.NewComputed(g, func() bool {
		v := email.Read()
		return strings.Contains(v, "@") && strings.Contains(v, ".")
	})
	passwordStrong := reactor.NewComputed(g, func() bool {
		v := password.Read()
		if v == "panic-me" {
			panic("password rule encountered an unsupported sentinel value")
		}
		return len(v) >= 8
	})
	passwordsMatch := reactor.NewComputed(g, func() bool {
		return password.Read() == confirmPassword.Read()
	})
	formValid := reactor.NewComputed(g, func() bool {
		return emailValid.Read() && passwordStrong.Read() && passwordsMatch.Read()
	})

	lines := 0
	validator := reactor.NewEffect(g, func() {
		fmt.Fprintf(w, "form: email_ok=%v password_ok=%v match_ok=%v valid=%v\n",
			emailValid.Read(), passwordStrong.Read(), passwordsMatch.Read(), formValid.Read())
		lines++
		reactor.OnCleanup(g, func() {
			fmt.Fprintf(w, "  (clearing render #%d)\n", lines)
		})
	})
	defer validator.Dispose()

	email.Write("not-an-email")
	email.Write("user@example.com")

	g.Batch(func() {
		password.Write("short")
		confirmPassword.Write("short")
	})

	password.Write("longenoughpass")
	confirmPassword.Write("longenoughpass")

	func() {
		defer func() {
			if r := recover(); r != nil {
				fmt.Fprintf(w, "form: rejected input caused a panic, recovered: %v\n", r)
			}
		}()
		password.Write("panic-me")
	}()

	// passwordStrong's crash happened mid-recompute, so the effect never
	// finished subscribing to it (or to anything after it in its body);
	// password.Write alone won't reach the effect anymore. email is still a
	// live edge, so writing it redispatches the effect, which re-reads
	// passwordStrong (now valid again) and repairs every subscription the
	// crash had severed.
	password.Write("longenoughpass")
	email.Write("user@example.org")
}
