package utils

import (
	"fmt"
	"log"
	"os"

	"github.com/wneessen/go-mail"

	"vyv_dulceria/internal/models"
)

// NotificarNuevoPedido avisa por correo a la tienda cuando entra un pedido.
// Mejor esfuerzo: sin SMTP configurado no hace nada y el checkout no depende
// de que el envío funcione.
func NotificarNuevoPedido(pedido models.Order) {
	host := os.Getenv("SMTP_HOST")
	destino := os.Getenv("SHOP_EMAIL")
	if host == "" || destino == "" {
		return
	}

	msg := mail.NewMsg()
	if err := msg.From(os.Getenv("SMTP_FROM")); err != nil {
		log.Println("⚠️  Remitente SMTP inválido:", err)
		return
	}
	if err := msg.To(destino); err != nil {
		log.Println("⚠️  Destinatario SMTP inválido:", err)
		return
	}

	msg.Subject(fmt.Sprintf("Nuevo pedido #%s - %.2f", pedido.ID, pedido.Total))
	msg.SetBodyString(mail.TypeTextHTML, htmlPedido(pedido))

	client, err := mail.NewClient(host,
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		log.Println("⚠️  Error creando cliente SMTP:", err)
		return
	}

	log.Println("📤 Notificando pedido", pedido.ID, "a", destino)
	if err := client.DialAndSend(msg); err != nil {
		log.Println("⚠️  Error enviando notificación:", err)
	}
}

func htmlPedido(pedido models.Order) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="es">
<body style="font-family: Arial, sans-serif;">
	<h2>Nuevo pedido en la Dulcería</h2>
	<p><strong>Cliente:</strong> %s<br>
	<strong>Dirección:</strong> %s<br>
	<strong>Teléfono:</strong> %s<br>
	<strong>Correo:</strong> %s</p>
	<p><strong>Productos:</strong> %s</p>
	<p><strong>Total:</strong> %.2f</p>
	<p>Estado inicial: %s</p>
</body>
</html>`, pedido.Cliente, pedido.Direccion, pedido.Telefono, pedido.Correo,
		pedido.Productos, pedido.Total, pedido.Status)
}
