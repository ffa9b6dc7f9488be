package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type seedOffer struct {
	title        string
	description  string
	savingsText  string
	affiliateURL string
}

var seedOffers = []seedOffer{
	{
		title:        "Find Low Final Expense Insurance Rates In As Little As 15 Minutes",
		description:  "Average premiums start around $1/day. Don't leave your family with unexpected expenses.",
		savingsText:  "YOU MAY BE ABLE TO SAVE UP TO $450/YEAR",
		affiliateURL: "https://example.com/insurance-offer",
	},
	{
		title:        "Get Cash Back on Every Purchase with This Amazing Credit Card",
		description:  "Earn 2% cash back on all purchases with no annual fee. Start saving money today.",
		savingsText:  "YOU COULD EARN UP TO $500/YEAR IN CASH BACK",
		affiliateURL: "https://example.com/credit-card-offer",
	},
	{
		title:        "Lower Your Internet Bill by 40% with This Provider",
		description:  "High-speed internet starting at just $29.99/month. No contracts, no hidden fees.",
		savingsText:  "SAVE UP TO $300/YEAR ON INTERNET COSTS",
		affiliateURL: "https://example.com/internet-offer",
	},
	{
		title:        "Refinance Your Mortgage and Save Thousands",
		description:  "Rates as low as 2.9% APR. See if you qualify for a lower payment in minutes.",
		savingsText:  "POTENTIAL SAVINGS UP TO $2,500/YEAR",
		affiliateURL: "https://example.com/mortgage-offer",
	},
	{
		title:        "Free Home Security System Installation",
		description:  "Professional monitoring starting at $19.99/month. Protect your family today.",
		savingsText:  "FREE INSTALLATION SAVES YOU $199",
		affiliateURL: "https://example.com/security-offer",
	},
	{
		title:        "Cut Your Car Insurance by Up to 50%",
		description:  "Compare rates from top providers and find the best deal in your area.",
		savingsText:  "AVERAGE SAVINGS OF $847/YEAR",
		affiliateURL: "https://example.com/auto-insurance-offer",
	},
	{
		title:        "Solar Panels: $0 Down Installation Available",
		description:  "Generate your own clean energy and reduce electric bills by up to 90%.",
		savingsText:  "SAVE UP TO $1,200/YEAR ON ELECTRICITY",
		affiliateURL: "https://example.com/solar-offer",
	},
	{
		title:        "Get Pre-Approved for a Personal Loan Today",
		description:  "Borrow up to $40,000 with fixed rates. Check your rate without affecting credit score.",
		savingsText:  "RATES AS LOW AS 5.99% APR",
		affiliateURL: "https://example.com/loan-offer",
	},
	{
		title:        "Meal Kit Delivery: 50% Off First 3 Boxes",
		description:  "Fresh ingredients and easy recipes delivered to your door weekly.",
		savingsText:  "SAVE OVER $150 ON YOUR FIRST MONTH",
		affiliateURL: "https://example.com/meal-kit-offer",
	},
	{
		title:        "Professional Resume Writing Service",
		description:  "Boost your career with a professionally written resume. 90% of clients get interviews.",
		savingsText:  "SPECIAL DISCOUNT: 40% OFF TODAY ONLY",
		affiliateURL: "https://example.com/resume-offer",
	},
}

// Seed wipes all chain data and loads the demo offer list. Actions go
// first so the lead and offer deletes never trip over the ledger's
// foreign keys.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	for _, table := range []string{"actions", "leads", "offers"} {
		if _, err := pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for i, o := range seedOffers {
		_, err := pool.Exec(ctx, `INSERT INTO offers
    (offer_id, title, description, savings_text, affiliate_url, position, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, TRUE, now(), now())`,
			uuid.NewString(), o.title, o.description, o.savingsText, o.affiliateURL, i+1)
		if err != nil {
			return fmt.Errorf("seed offer %d: %w", i+1, err)
		}
	}
	return nil
}
