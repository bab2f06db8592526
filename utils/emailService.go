package utils

import (
	"fmt"
	"log"
	"strings"

	"digimarket/config"
	"digimarket/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendReceiptEmail sends the purchase receipt after a checkout settles.
// Best-effort: failures are logged by the caller, never block the purchase.
func SendReceiptEmail(email, name string, items []models.CartItem, method string) error {
	if config.AppConfig.SendGridKey == "" {
		return fmt.Errorf("sendgrid is not configured")
	}

	subtotal := models.Subtotal(items)
	tax := int(float64(subtotal) * models.TaxRate)
	total := subtotal + tax

	var rows strings.Builder
	for _, it := range items {
		rows.WriteString(fmt.Sprintf(`
			<tr>
				<td style="padding: 8px 0; color: #555555;">%s × %d</td>
				<td style="padding: 8px 0; text-align: right; color: #555555;">Rp %s</td>
			</tr>`, it.Name, it.Quantity, FormatRupiah(it.Price*it.Quantity)))
	}

	html := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">Terima kasih atas pembelian Anda, %s!</h2>
					<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">%s</table>
					<p style="font-size: 14px; color: #555555;">Subtotal: Rp %s</p>
					<p style="font-size: 14px; color: #555555;">PPN (11%%): Rp %s</p>
					<h3 style="color: #333333;">Total: Rp %s</h3>
					<p style="font-size: 14px; color: #999999;">Metode pembayaran: %s</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">Produk digital Anda sudah tersedia di Perpustakaan.</p>
				</div>
			</body>
		</html>
	`, name, rows.String(), FormatRupiah(subtotal), FormatRupiah(tax), FormatRupiah(total), method)

	from := mail.NewEmail("DigiMarket", config.AppConfig.EmailSender)
	to := mail.NewEmail(name, email)
	message := mail.NewSingleEmail(from, "Struk Pembelian DigiMarket", to, "Terima kasih atas pembelian Anda di DigiMarket.", html)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridKey)
	resp, err := client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned %d: %s", resp.StatusCode, resp.Body)
	}

	log.Println("Receipt email sent to", email)
	return nil
}

// SendCertificateEmail congratulates the user on completing a course.
func SendCertificateEmail(email, name, courseName string) error {
	if config.AppConfig.SendGridKey == "" {
		return fmt.Errorf("sendgrid is not configured")
	}

	html := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">Selamat, %s!</h2>
					<p style="font-size: 16px; color: #555555; text-align: center;">Anda telah menyelesaikan kursus:</p>
					<h3 style="text-align: center; color: #4CAF50;">%s</h3>
					<p style="font-size: 14px; color: #999999; text-align: center;">Sertifikat Anda tersedia di halaman kursus.</p>
				</div>
			</body>
		</html>
	`, name, courseName)

	from := mail.NewEmail("DigiMarket", config.AppConfig.EmailSender)
	to := mail.NewEmail(name, email)
	message := mail.NewSingleEmail(from, "Sertifikat Kursus Anda - DigiMarket", to, "Selamat! Anda telah menyelesaikan kursus.", html)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridKey)
	resp, err := client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned %d: %s", resp.StatusCode, resp.Body)
	}

	log.Println("Certificate email sent to", email)
	return nil
}
