package utils

import (
	"bytes"
	"html/template"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// OrderConfirmationData feeds the confirmation email template
type OrderConfirmationData struct {
	OrderCode     string
	FullName      string
	Quantity      int
	Total         int
	DeliveryFee   int
	Discount      int
	PaymentMethod string
	Address       string
}

// DailyDigestData feeds the end-of-day sales digest
type DailyDigestData struct {
	Date          string
	TotalOrders   int64
	TotalRevenue  int64
	BkashOrders   int64
	CodOrders     int64
	PendingOrders int64
	UnpaidBkash   int64
}

func sendMail(to, subject, htmlBody string) error {
	host := os.Getenv("SMTP_HOST")
	portStr := os.Getenv("SMTP_PORT")
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")
	from := os.Getenv("SMTP_FROM")

	port, _ := strconv.Atoi(portStr)

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(host, port, username, password)
	return d.DialAndSend(m)
}

// SendOrderConfirmationEmail mails the customer asynchronously so the
// checkout response is not delayed
func SendOrderConfirmationEmail(to string, data OrderConfirmationData) {
	go func() {
		tmpl, err := template.ParseFiles("templates/order_confirmation.html")
		if err != nil {
			log.Printf("Failed to load confirmation template: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("Failed to render confirmation template: %v", err)
			return
		}

		if err := sendMail(to, "Order confirmation #"+data.OrderCode, body.String()); err != nil {
			log.Printf("Failed to send confirmation email for %s: %v", data.OrderCode, err)
		}
	}()
}

// SendDailyDigestEmail mails the daily sales summary to the store operator
func SendDailyDigestEmail(to string, data DailyDigestData) {
	tmpl, err := template.ParseFiles("templates/daily_digest.html")
	if err != nil {
		log.Printf("Failed to load digest template: %v", err)
		return
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		log.Printf("Failed to render digest template: %v", err)
		return
	}

	if err := sendMail(to, "Daily sales digest "+data.Date, body.String()); err != nil {
		log.Printf("Failed to send daily digest: %v", err)
	}
}
