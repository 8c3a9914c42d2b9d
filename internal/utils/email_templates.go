package utils

import (
	"fmt"
	"strings"
	"time"

	"eshop_back_end/internal/models"
)

// GenerateOrderConfirmationHTML génère le HTML de confirmation de commande client.
func GenerateOrderConfirmationHTML(order models.Order) string {
	itemsHTML := ""
	for _, item := range order.Items {
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td style="padding: 8px; border-bottom: 1px solid #e5e7eb;">%s</td>
				<td style="padding: 8px; border-bottom: 1px solid #e5e7eb;">%d</td>
				<td style="padding: 8px; border-bottom: 1px solid #e5e7eb;">$%.2f</td>
				<td style="padding: 8px; border-bottom: 1px solid #e5e7eb;">$%.2f</td>
			</tr>`, item.Name, item.Quantity, item.Price, item.Price*float64(item.Quantity))
	}

	promoHTML := ""
	if order.PromoCode != "" {
		promoHTML = fmt.Sprintf(`<p style="font-size: 14px; color: #16a34a;">Promo code applied: <strong>%s</strong></p>`, order.PromoCode)
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<title>Order Confirmation</title>
</head>
<body style="font-family: Arial, sans-serif; margin: 0; padding: 0; background-color: #f4f4f4;">
	<div style="max-width: 600px; margin: 20px auto; background-color: #ffffff; border-radius: 8px;">
		<div style="background-color: #4f46e5; padding: 20px; text-align: center; color: #ffffff;">
			<h1 style="margin: 0; font-size: 24px;">Order Confirmed</h1>
		</div>
		<div style="padding: 20px;">
			<p style="font-size: 16px; color: #333333;">Dear %s,</p>
			<p style="font-size: 16px; color: #333333;">Your order has been placed successfully.</p>
			%s
			<table style="width: 100%%; border-collapse: collapse; font-size: 14px; color: #333333;">
				<thead>
					<tr style="background-color: #f9fafb;">
						<th style="padding: 8px; text-align: left; border-bottom: 1px solid #e5e7eb;">Name</th>
						<th style="padding: 8px; text-align: left; border-bottom: 1px solid #e5e7eb;">Quantity</th>
						<th style="padding: 8px; text-align: left; border-bottom: 1px solid #e5e7eb;">Price</th>
						<th style="padding: 8px; text-align: left; border-bottom: 1px solid #e5e7eb;">Total</th>
					</tr>
				</thead>
				<tbody>%s</tbody>
				<tfoot>
					<tr>
						<td colspan="3" style="padding: 8px; text-align: right; font-weight: bold;">Total:</td>
						<td style="padding: 8px; font-weight: bold;">$%.2f</td>
					</tr>
				</tfoot>
			</table>
		</div>
		<div style="background-color: #f9fafb; padding: 15px; text-align: center; font-size: 12px; color: #6b7280;">
			<p style="margin: 0;">Your E-Commerce Platform</p>
		</div>
	</div>
</body>
</html>`, order.CustomerName, promoHTML, itemsHTML, order.TotalAmount)
}

// GenerateAdminOrderNotificationHTML alerte l'admin d'une nouvelle commande.
func GenerateAdminOrderNotificationHTML(order models.Order) string {
	itemsHTML := ""
	for _, item := range order.Items {
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td style="padding: 8px; border-bottom: 1px solid #e5e7eb;">%s</td>
				<td style="padding: 8px; border-bottom: 1px solid #e5e7eb;">%d</td>
				<td style="padding: 8px; border-bottom: 1px solid #e5e7eb;">$%.2f</td>
			</tr>`, item.Name, item.Quantity, item.Price)
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<title>New Order Placed</title>
</head>
<body style="font-family: Arial, sans-serif; margin: 0; padding: 0; background-color: #f4f4f4;">
	<div style="max-width: 600px; margin: 20px auto; background-color: #ffffff; border-radius: 8px;">
		<div style="background-color: #4f46e5; padding: 20px; text-align: center; color: #ffffff;">
			<h1 style="margin: 0; font-size: 24px;">New Order Placed</h1>
		</div>
		<div style="padding: 20px;">
			<p style="font-size: 16px; color: #333333;">A new order has been placed by <strong>%s</strong>.</p>
			<h2 style="font-size: 18px; color: #4f46e5; margin: 20px 0 10px;">Order Details</h2>
			<table style="width: 100%%; border-collapse: collapse; font-size: 14px; color: #333333;">
				<tr>
					<td style="padding: 8px; border-bottom: 1px solid #e5e7eb;"><strong>Order ID</strong></td>
					<td style="padding: 8px; border-bottom: 1px solid #e5e7eb;">%s</td>
				</tr>
				<tr>
					<td style="padding: 8px; border-bottom: 1px solid #e5e7eb;"><strong>Total Amount</strong></td>
					<td style="padding: 8px; border-bottom: 1px solid #e5e7eb;">$%.2f</td>
				</tr>
				<tr>
					<td style="padding: 8px; border-bottom: 1px solid #e5e7eb;"><strong>Status</strong></td>
					<td style="padding: 8px; border-bottom: 1px solid #e5e7eb;">%s</td>
				</tr>
				<tr>
					<td style="padding: 8px; border-bottom: 1px solid #e5e7eb;"><strong>Payment Status</strong></td>
					<td style="padding: 8px; border-bottom: 1px solid #e5e7eb;">%s</td>
				</tr>
				<tr>
					<td style="padding: 8px; border-bottom: 1px solid #e5e7eb;"><strong>Date</strong></td>
					<td style="padding: 8px; border-bottom: 1px solid #e5e7eb;">%s</td>
				</tr>
			</table>
			<h2 style="font-size: 18px; color: #4f46e5; margin: 20px 0 10px;">Products</h2>
			<table style="width: 100%%; border-collapse: collapse; font-size: 14px; color: #333333;">
				<thead>
					<tr style="background-color: #f9fafb;">
						<th style="padding: 8px; text-align: left; border-bottom: 1px solid #e5e7eb;">Name</th>
						<th style="padding: 8px; text-align: left; border-bottom: 1px solid #e5e7eb;">Quantity</th>
						<th style="padding: 8px; text-align: left; border-bottom: 1px solid #e5e7eb;">Price</th>
					</tr>
				</thead>
				<tbody>%s</tbody>
			</table>
		</div>
		<div style="background-color: #f9fafb; padding: 15px; text-align: center; font-size: 12px; color: #6b7280;">
			<p style="margin: 0;">Your E-Commerce Platform</p>
		</div>
	</div>
</body>
</html>`, order.CustomerName, order.ID.Hex(), order.TotalAmount, order.Status,
		order.PaymentStatus, order.CreatedAt.Format("2006-01-02 15:04"), itemsHTML)
}

// GenerateOrderUpdateHTML prévient le client d'un changement de statut.
func GenerateOrderUpdateHTML(customerName, orderID, newStatus, orderURL string, updatedAt time.Time) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<title>Order Status Updated</title>
</head>
<body style="font-family: Arial, sans-serif; margin: 0; padding: 0; background-color: #f4f4f4;">
	<div style="max-width: 600px; margin: 20px auto; background-color: #ffffff; border-radius: 8px;">
		<div style="background-color: #4f46e5; padding: 20px; text-align: center; color: #ffffff;">
			<h1 style="margin: 0; font-size: 24px;">Order Update</h1>
		</div>
		<div style="padding: 20px;">
			<p style="font-size: 16px; color: #333333; margin: 0 0 15px;">Dear %s,</p>
			<p style="font-size: 16px; color: #333333; margin: 0 0 15px;">Your order (ID: %s) has been updated:</p>
			<p style="font-size: 16px; color: #333333; margin: 0 0 10px;"><strong>New Status:</strong> %s</p>
			<p style="font-size: 14px; color: #666666; margin: 0 0 15px;">Updated on: %s</p>
			<a href="%s" style="display: inline-block; padding: 10px 20px; background-color: #4f46e5; color: #ffffff; text-decoration: none; border-radius: 5px;">View Order</a>
		</div>
		<div style="background-color: #f9fafb; padding: 15px; text-align: center; font-size: 12px; color: #6b7280;">
			<p style="margin: 0;">Your E-Commerce Platform</p>
		</div>
	</div>
</body>
</html>`, customerName, orderID, newStatus, updatedAt.Format("2006-01-02 15:04"), orderURL)
}

// GenerateWelcomeHTML — e-mail de bienvenue à l'inscription.
func GenerateWelcomeHTML(name string) string {
	return fmt.Sprintf(`<h1>Hello %s</h1><p>Thank you for registering with us. We are excited to have you on board!</p>`, name)
}

// GenerateGiveawayWinnerHTML — e-mail gagnant avec le code promo et son QR.
func GenerateGiveawayWinnerHTML(code string, endDate time.Time, qrDataURI string) string {
	qrHTML := ""
	if qrDataURI != "" {
		qrHTML = fmt.Sprintf(`<p><img src="%s" alt="Promo QR code" width="256" height="256"></p>`, qrDataURI)
	}

	return fmt.Sprintf(`
		<h1>Congratulations!</h1>
		<p>You've won a <strong>20%% off promo code</strong> in our giveaway!</p>
		<p>Your code: <strong>%s</strong></p>
		%s
		<p>Valid until: %s</p>
		<p>Use it at checkout on our site. Happy shopping!</p>`,
		code, qrHTML, endDate.Format("January 2, 2006"))
}

// GenerateContactSupportHTML — relai du formulaire de contact vers le support.
func GenerateContactSupportHTML(name, email, subject, message string) string {
	return fmt.Sprintf(`
		<h2>New Contact Form Submission</h2>
		<p><strong>From:</strong> %s &lt;%s&gt;</p>
		<p><strong>Subject:</strong> %s</p>
		<p><strong>Message:</strong></p>
		<p>%s</p>`,
		name, email, subject, strings.ReplaceAll(message, "\n", "<br>"))
}

// GenerateContactAckHTML — accusé de réception au visiteur.
func GenerateContactAckHTML(name, subject, message string) string {
	return fmt.Sprintf(`
		<h2>Thanks for Contacting Us, %s!</h2>
		<p>We've received your message and will respond as soon as possible.</p>
		<p><strong>Your Subject:</strong> %s</p>
		<p><strong>Your Message:</strong></p>
		<p>%s</p>
		<p>Best regards,<br>The E-Shop Team</p>`,
		name, subject, strings.ReplaceAll(message, "\n", "<br>"))
}
