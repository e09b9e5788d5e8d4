package validators

import (
	"fmt"

	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/httperr"
)

// NormalizeCPF valida os dígitos verificadores e devolve o CPF no
// formato "123.456.789-09". CPF é opcional no cadastro; string vazia
// passa direto.
func NormalizeCPF(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}

	digits := onlyDigits(raw)
	if len(digits) != 11 {
		return "", httperr.ErrBusiness("invalid_cpf")
	}

	allEqual := true
	for i := 1; i < 11; i++ {
		if digits[i] != digits[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return "", httperr.ErrBusiness("invalid_cpf")
	}

	if cpfCheckDigit(digits, 9) != int(digits[9]-'0') ||
		cpfCheckDigit(digits, 10) != int(digits[10]-'0') {
		return "", httperr.ErrBusiness("invalid_cpf")
	}

	return fmt.Sprintf("%s.%s.%s-%s", digits[:3], digits[3:6], digits[6:9], digits[9:]), nil
}

func cpfCheckDigit(digits string, length int) int {
	sum := 0
	for i := 0; i < length; i++ {
		sum += int(digits[i]-'0') * (length + 1 - i)
	}
	rest := (sum * 10) % 11
	if rest == 10 {
		return 0
	}
	return rest
}
