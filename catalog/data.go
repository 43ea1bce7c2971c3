package catalog

import "github.com/bmowen/webquote-backend/models"

// Default returns the agency's current price list. Industry-standard pricing
// in naira.
func Default() *Catalog {
	return New(defaultWebsiteTypes(), defaultAddOns(), defaultMaintenancePlans())
}

func defaultWebsiteTypes() []models.WebsiteType {
	return []models.WebsiteType{
		{
			Id:                 "static",
			Name:               "Static Website",
			Description:        "Perfect for portfolios, landing pages, and business showcases",
			BasePrice:          150000,
			MonthlyMaintenance: 5000,
			Features:           []string{"5-7 Pages", "Responsive design", "SEO optimized", "Fast loading", "Mobile friendly", "1 month support"},
			DeliveryTime:       "1-2 weeks",
		},
		{
			Id:                 "dynamic",
			Name:               "Dynamic Website + CMS",
			Description:        "Full CMS with admin dashboard for content management",
			BasePrice:          350000,
			MonthlyMaintenance: 15000,
			Features:           []string{"Content management", "Admin dashboard", "User authentication", "Database integration", "5-10 pages", "3 months support"},
			DeliveryTime:       "3-4 weeks",
			Popular:            true,
		},
		{
			Id:                 "ecommerce",
			Name:               "E-commerce Platform",
			Description:        "Complete online store with payment processing",
			BasePrice:          600000,
			MonthlyMaintenance: 25000,
			Features:           []string{"Product management", "Payment gateway", "Order tracking", "Inventory system", "Admin dashboard", "6 months support"},
			DeliveryTime:       "4-6 weeks",
		},
		{
			Id:                 "mobile-app",
			Name:               "Mobile Application",
			Description:        "Complete mobile application (iOS & Android)",
			BasePrice:          1200000,
			MonthlyMaintenance: 40000,
			Features:           []string{"User authentication", "Push notifications", "Cross-platform", "App store deployment", "Backend API", "6 months support"},
			DeliveryTime:       "6-8 weeks",
		},
		{
			Id:                 "web-app",
			Name:               "Web Application",
			Description:        "Complex web application with advanced functionality",
			BasePrice:          800000,
			MonthlyMaintenance: 35000,
			Features:           []string{"Advanced features", "User management", "Real-time updates", "API integration", "Scalable architecture", "1 year support"},
			DeliveryTime:       "8-12 weeks",
		},
	}
}

func defaultAddOns() []models.AddOnService {
	return []models.AddOnService{
		{
			Id:          "chat",
			Name:        "Live Chat System",
			Description: "Real-time customer support chat with admin panel",
			Price:       75000,
			MonthlyFee:  3000,
			Category:    models.AddOnCategoryFeature,
		},
		{
			Id:          "whatsapp",
			Name:        "WhatsApp Integration",
			Description: "Direct WhatsApp messaging with automated responses",
			Price:       45000,
			Category:    models.AddOnCategoryIntegration,
		},
		{
			Id:          "custom-design",
			Name:        "Premium Design Package",
			Description: "Unique branding, custom UI/UX design",
			Price:       120000,
			Category:    models.AddOnCategoryFeature,
		},
		{
			Id:          "user-system",
			Name:        "Advanced User System",
			Description: "User profiles, roles, permissions, and dashboards",
			Price:       90000,
			Category:    models.AddOnCategoryFeature,
		},
		{
			Id:          "performance",
			Name:        "Performance Optimization",
			Description: "Advanced speed optimization and CDN setup",
			Price:       60000,
			MonthlyFee:  5000,
			Category:    models.AddOnCategoryMaintenance,
		},
		{
			Id:          "seo-basic",
			Name:        "Basic SEO Setup",
			Description: "On-page SEO optimization and Google Analytics",
			Price:       45000,
			Category:    models.AddOnCategoryMarketing,
		},
		{
			Id:          "seo-advanced",
			Name:        "Advanced SEO Package",
			Description: "Complete SEO strategy + 3 months optimization",
			Price:       120000,
			MonthlyFee:  15000,
			Category:    models.AddOnCategoryMarketing,
		},
		{
			Id:          "email-marketing",
			Name:        "Email Marketing System",
			Description: "Newsletter system with automation",
			Price:       80000,
			MonthlyFee:  7000,
			Category:    models.AddOnCategoryMarketing,
		},
		{
			Id:          "ssl-security",
			Name:        "SSL Security Pro",
			Description: "Advanced security features and SSL certificate",
			Price:       35000,
			MonthlyFee:  2000,
			Category:    models.AddOnCategoryMaintenance,
		},
		{
			Id:          "backup-system",
			Name:        "Automated Backup System",
			Description: "Daily backups and quick restoration",
			Price:       55000,
			MonthlyFee:  4000,
			Category:    models.AddOnCategoryMaintenance,
		},
		{
			Id:          "booking-system",
			Name:        "Booking/Appointment System",
			Description: "Complete booking system with calendar",
			Price:       95000,
			MonthlyFee:  8000,
			Category:    models.AddOnCategoryFeature,
		},
		{
			Id:          "multi-language",
			Name:        "Multi-language Support",
			Description: "2 additional languages integration",
			Price:       65000,
			Category:    models.AddOnCategoryFeature,
		},
		{
			Id:          "payment-methods",
			Name:        "Additional Payment Methods",
			Description: "Add PayPal, Flutterwave, Bank Transfer",
			Price:       50000,
			Category:    models.AddOnCategoryIntegration,
		},
	}
}

func defaultMaintenancePlans() []models.MaintenancePlan {
	return []models.MaintenancePlan{
		{
			Id:       "basic",
			Name:     "Basic Maintenance",
			Price:    10000,
			Features: []string{"Security updates", "Basic support", "Monthly backups"},
		},
		{
			Id:       "standard",
			Name:     "Standard Maintenance",
			Price:    20000,
			Features: []string{"Priority support", "Weekly backups", "Performance monitoring", "SEO updates"},
		},
		{
			Id:       "premium",
			Name:     "Premium Maintenance",
			Price:    35000,
			Features: []string{"24/7 support", "Daily backups", "Advanced security", "Regular updates", "Uptime monitoring"},
		},
	}
}
