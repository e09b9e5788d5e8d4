package validators

import (
	"fmt"
	"strings"

	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/httperr"
)

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizePhone aceita qualquer pontuação e devolve o número no
// padrão fixo gravado nas tabelas: "(11) 98765-4321" (celular) ou
// "(11) 8765-4321" (fixo). Código do país 55 é tolerado e removido.
func NormalizePhone(raw string) (string, error) {
	digits := onlyDigits(raw)

	if strings.HasPrefix(digits, "55") && len(digits) > 11 {
		digits = digits[2:]
	}

	switch len(digits) {
	case 11:
		return fmt.Sprintf("(%s) %s-%s", digits[:2], digits[2:7], digits[7:]), nil
	case 10:
		return fmt.Sprintf("(%s) %s-%s", digits[:2], digits[2:6], digits[6:]), nil
	default:
		return "", httperr.ErrBusiness("invalid_phone")
	}
}
