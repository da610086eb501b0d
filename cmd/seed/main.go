package main

import (
	"time"

	"github.com/ecat-taratra/backend/internal/config"
	"github.com/ecat-taratra/backend/internal/logger"
	"github.com/ecat-taratra/backend/internal/models"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 培训项目
	formations := []models.Formation{
		{
			Titre:       "Génie Civil",
			Description: "Formation technique en bâtiment et travaux publics.",
			Programme:   "Topographie, résistance des matériaux, dessin technique, chantier école.",
		},
		{
			Titre:       "Électricité",
			Description: "Installations électriques domestiques et industrielles.",
			Programme:   "Électrotechnique, schémas, habilitation, maintenance.",
		},
		{
			Titre:       "Menuiserie",
			Description: "Travail du bois et fabrication de mobilier.",
			Programme:   "Technologie du bois, assemblage, finition, atelier.",
		},
	}
	for _, formation := range formations {
		var existing models.Formation
		if err := models.DB.Where("titre = ?", formation.Titre).First(&existing).Error; err == nil {
			stdLog.Printf("Formation already exists: %s", formation.Titre)
			continue
		}
		if err := models.DB.Create(&formation).Error; err != nil {
			stdLog.Printf("Failed to create formation %s: %v", formation.Titre, err)
			continue
		}
		stdLog.Printf("Created formation: %s", formation.Titre)
	}

	// 新闻动态
	actualites := []models.Actualite{
		{
			Titre:     "Rentrée scolaire",
			Contenu:   "Les inscriptions pour la nouvelle année sont ouvertes.",
			Categorie: "Vie scolaire",
		},
		{
			Titre:     "Journée portes ouvertes",
			Contenu:   "Venez découvrir nos ateliers et rencontrer les formateurs.",
			Categorie: "Événement",
		},
	}
	for _, actualite := range actualites {
		var existing models.Actualite
		if err := models.DB.Where("titre = ?", actualite.Titre).First(&existing).Error; err == nil {
			stdLog.Printf("Actualite already exists: %s", actualite.Titre)
			continue
		}
		if err := models.DB.Create(&actualite).Error; err != nil {
			stdLog.Printf("Failed to create actualite %s: %v", actualite.Titre, err)
			continue
		}
		stdLog.Printf("Created actualite: %s", actualite.Titre)
	}

	// 校长
	startDate := time.Date(2015, time.September, 1, 0, 0, 0, 0, time.UTC)
	director := models.Director{
		Name:      "Frère Directeur",
		Title:     "Directeur",
		Bio:       "Responsable de l'établissement depuis 2015.",
		Email:     "direction@ecat-taratra.mg",
		Message:   "Bienvenue à l'ECAT TARATRA.",
		StartDate: &startDate,
	}
	var directorCount int64
	models.DB.Model(&models.Director{}).Count(&directorCount)
	if directorCount == 0 {
		if err := models.DB.Create(&director).Error; err != nil {
			stdLog.Printf("Failed to create director: %v", err)
		} else {
			stdLog.Printf("Created director: %s", director.Name)
		}
	}

	// 关于我们
	var aboutCount int64
	models.DB.Model(&models.AboutContent{}).Count(&aboutCount)
	if aboutCount == 0 {
		about := models.AboutContent{
			Title:       "À propos de l'ECAT TARATRA",
			Description: "École Catholique d'Arts et Techniques.",
			Mission:     "Former des techniciens compétents et responsables.",
			Vision:      "Un enseignement technique accessible à tous.",
			History:     "Fondée par la congrégation des Frères.",
		}
		if err := models.DB.Create(&about).Error; err != nil {
			stdLog.Printf("Failed to create about content: %v", err)
		} else {
			stdLog.Printf("Created about content")
		}
	}

	// 联系方式
	var contactCount int64
	models.DB.Model(&models.ContactInfo{}).Count(&contactCount)
	if contactCount == 0 {
		info := models.ContactInfo{
			Email:       "contact@ecat-taratra.mg",
			Phone:       "+261 20 00 000 00",
			Address:     "Antananarivo, Madagascar",
			SocialMedia: `{"facebook":"https://facebook.com/ecattaratra"}`,
		}
		if err := models.DB.Create(&info).Error; err != nil {
			stdLog.Printf("Failed to create contact info: %v", err)
		} else {
			stdLog.Printf("Created contact info")
		}
	}

	stdLog.Printf("Seed completed")
}
