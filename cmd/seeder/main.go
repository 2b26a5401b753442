package main

import (
	"context"
	"flag"
	"log/slog"

	"github.com/lawdex/lawdex"
	"github.com/lawdex/lawdex/ai/mock"
	"github.com/lawdex/lawdex/core"
)

var dbPath = flag.String("db", "./catalog_db", "path to catalog database directory")

// Sample catalog covering all four source types, for local development.
var databases = []core.ResourceEntry{
	{
		Name:        "Westlaw Edge",
		Aliases:     []string{"Westlaw"},
		URL:         "www.westlaw.com",
		Description: "Comprehensive legal research platform with case law, statutes, regulations, and secondary sources",
		Type:        core.TypeExternalDatabase,
	},
	{
		Name:        "LexisNexis",
		Aliases:     []string{"Lexis", "Lexis Advance"},
		URL:         "www.lexisnexis.com",
		Description: "Legal research database covering case law, statutes, news, and company information",
		Type:        core.TypeExternalDatabase,
	},
	{
		Name:        "Bloomberg Law",
		URL:         "www.bloomberglaw.com",
		Description: "Legal research with business intelligence, dockets, and transactional resources",
		Type:        core.TypeExternalDatabase,
	},
	{
		Name:        "HeinOnline",
		URL:         "heinonline.org",
		Description: "Law journal archive, historical statutes, treaties, and government documents",
		Type:        core.TypeExternalDatabase,
	},
	{
		Name:        "ProQuest Congressional",
		URL:         "congressional.proquest.com",
		Description: "Congressional publications, hearings, bills, and legislative histories",
		Type:        core.TypeExternalDatabase,
	},
	{
		Name:        "CCH IntelliConnect",
		Aliases:     []string{"CCH"},
		URL:         "intelliconnect.cch.com",
		Description: "Tax and accounting research with primary sources and expert analysis",
		Type:        core.TypeExternalDatabase,
	},
	{
		Name:        "PACER",
		URL:         "pacer.uscourts.gov",
		Description: "Public access to federal court electronic records and dockets",
		Type:        core.TypeExternalDatabase,
	},
	{
		Name:        "Fastcase",
		URL:         "www.fastcase.com",
		Description: "Case law and statute research with visualization tools",
		Type:        core.TypeExternalDatabase,
	},
}

var legalHelp = []core.ResourceEntry{
	{
		Name:        "Nolo",
		URL:         "www.nolo.com",
		Description: "Plain-language legal encyclopedia and self-help guides for the public",
		Type:        core.TypeLegalHelp,
	},
	{
		Name:        "Law Help Interactive",
		URL:         "lawhelpinteractive.org",
		Description: "Free interactive legal forms for self-represented litigants",
		Type:        core.TypeLegalHelp,
	},
	{
		Name:        "Legal Services Corporation",
		Aliases:     []string{"LSC"},
		URL:         "www.lsc.gov",
		Description: "Directory of civil legal aid providers for low-income Americans",
		Type:        core.TypeLegalHelp,
	},
}

var guides = []core.ResourceEntry{
	{
		Name:        "Contract Law",
		URL:         "guides.example.edu/contracts",
		Description: "Researching contract formation, breach, remedies, and the Uniform Commercial Code",
		Aliases:     []string{"Contracts"},
		Type:        core.TypeLocalGuide,
	},
	{
		Name:        "Constitutional Law",
		URL:         "guides.example.edu/conlaw",
		Description: "Federal constitutional research including framing-era sources and Supreme Court materials",
		Type:        core.TypeLocalGuide,
	},
	{
		Name:        "Intellectual Property",
		Aliases:     []string{"IP Law"},
		URL:         "guides.example.edu/ip",
		Description: "Patent, trademark, copyright, and trade secret research resources",
		Type:        core.TypeLocalGuide,
	},
	{
		Name:        "French Law",
		URL:         "guides.example.edu/french-law",
		Description: "Sources for researching the law of France in French and English",
		Type:        core.TypeLocalGuide,
	},
	{
		Name:        "Tax Law",
		URL:         "guides.example.edu/tax",
		Description: "Federal and state tax research including the Internal Revenue Code and rulings",
		Type:        core.TypeLocalGuide,
	},
	{
		Name:        "Legal History",
		URL:         "guides.example.edu/history",
		Description: "Historical legal materials, early treatises, and English legal history",
		Type:        core.TypeLocalGuide,
	},
}

var assets = []core.ResourceEntry{
	{
		Name:        "Contract Formation Checklist",
		URL:         "guides.example.edu/contracts/checklist",
		Description: "Checklist covering contract law formation basics for first-year students",
		Type:        core.TypeLibGuideAsset,
	},
	{
		Name:        "Bluebook Citation Quick Reference",
		URL:         "guides.example.edu/citation/bluebook",
		Description: "One-page reference for common Bluebook citation forms",
		Type:        core.TypeLibGuideAsset,
	},
	{
		Name:        "Legislative History Research Steps",
		URL:         "guides.example.edu/legislative/steps",
		Description: "Step-by-step walkthrough for compiling a federal legislative history",
		Type:        core.TypeLibGuideAsset,
	},
	{
		Name:        "Patent Search Tutorial",
		URL:         "guides.example.edu/ip/patent-search",
		Description: "Video tutorial on searching patents with classification codes",
		Type:        core.TypeLibGuideAsset,
	},
}

func main() {
	flag.Parse()

	// Seeding needs no live model; the mock keeps startup offline.
	service, err := lawdex.NewService(*dbPath, lawdex.WithRecommender(mock.NewMockRecommender()))
	if err != nil {
		panic(err)
	}
	defer service.Close()

	pipeline, err := service.NewIngestionPipeline()
	if err != nil {
		panic(err)
	}
	defer pipeline.Release()

	ctx := context.Background()
	total := 0
	for _, source := range [][]core.ResourceEntry{databases, legalHelp, guides, assets} {
		stored, err := pipeline.Ingest(ctx, source)
		if err != nil {
			panic(err)
		}
		total += stored
	}

	slog.Info("catalog seeded", "entries", total, "db", *dbPath)
}
