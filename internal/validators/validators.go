package validators

import (
	"regexp"
	"strings"
)

// Patrones del formulario de pago. Se compilan una sola vez.
var (
	reTelefono   = regexp.MustCompile(`^\d{7,15}$`)
	reCorreo     = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)
	reTarjeta    = regexp.MustCompile(`^\d{16}$`)
	reCVV        = regexp.MustCompile(`^\d{3,4}$`)
	reExpiracion = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
)

// SoloDigitos conserva únicamente los dígitos decimales de s.
func SoloDigitos(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TelefonoValido acepta entre 7 y 15 dígitos, nada más.
func TelefonoValido(digitos string) bool {
	return reTelefono.MatchString(digitos)
}

// CorreoValido acepta la forma local@dominio.tld.
func CorreoValido(correo string) bool {
	return reCorreo.MatchString(correo)
}

// TarjetaValida exige 16 dígitos y checksum de Luhn correcto.
func TarjetaValida(digitos string) bool {
	return reTarjeta.MatchString(digitos) && luhnOK(digitos)
}

// CVVValido acepta 3 o 4 dígitos.
func CVVValido(digitos string) bool {
	return reCVV.MatchString(digitos)
}

// ExpiracionValida acepta MM/AA con MM entre 01 y 12.
func ExpiracionValida(exp string) bool {
	return reExpiracion.MatchString(exp)
}

// luhnOK suma de derecha a izquierda duplicando cada segundo dígito
// (restando 9 si supera 9); válido si el total es múltiplo de 10.
func luhnOK(digitos string) bool {
	total := 0
	for i := 0; i < len(digitos); i++ {
		d := int(digitos[len(digitos)-1-i] - '0')
		if i%2 == 1 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		total += d
	}
	return total%10 == 0
}
