package i18n

var catalog = map[string]map[string]string{
	LocaleFR: {
		"error.bad_request":                 "Requête invalide",
		"error.unauthenticated":             "Non authentifié",
		"error.invalid_credentials":         "Email ou mot de passe incorrect",
		"error.password_too_long":           "Le mot de passe dépasse 72 octets",
		"error.login_failed":                "Échec de la connexion",
		"error.internal":                    "Erreur interne du serveur",
		"error.not_found":                   "Ressource introuvable",
		"error.id_invalid":                  "Identifiant invalide",
		"error.admin_not_found":             "Administrateur introuvable",
		"error.admin_email_exists":          "Un administrateur utilise déjà cet email",
		"error.admin_last":                  "Impossible de supprimer le dernier administrateur",
		"error.admin_create_failed":         "Échec de la création de l'administrateur",
		"error.admin_update_failed":         "Échec de la mise à jour de l'administrateur",
		"error.admin_delete_failed":         "Échec de la suppression de l'administrateur",
		"error.admin_fetch_failed":          "Échec de la récupération des administrateurs",
		"error.password_required":           "Le mot de passe est obligatoire",
		"error.email_invalid":               "Adresse email invalide",
		"error.fetch_failed":                "Échec de la récupération",
		"error.save_failed":                 "Échec de l'enregistrement",
		"error.delete_failed":               "Échec de la suppression",
		"error.formation_not_found":         "Formation introuvable",
		"error.actualite_not_found":         "Actualité introuvable",
		"error.director_not_found":          "Directeur introuvable",
		"error.about_not_found":             "Contenu introuvable",
		"error.contact_info_not_found":      "Information de contact introuvable",
		"error.contact_message_not_found":   "Message introuvable",
		"error.captcha_required":            "Code de vérification requis",
		"error.captcha_invalid":             "Code de vérification invalide",
		"error.captcha_disabled":            "Le code de vérification est désactivé",
		"error.captcha_generate_failed":     "Échec de la génération du code de vérification",
		"error.file_missing":                "Aucun fichier fourni",
		"error.upload_invalid":              "Fichier image invalide",
		"error.upload_too_large":            "Fichier trop volumineux",
		"error.upload_failed":               "Échec du téléversement",
		"message.upload_success":            "Image téléversée avec succès",
		"message.contact_message_received":  "Votre message a bien été envoyé",
		"message.deleted":                   "Supprimé avec succès",
		"message.password_changed":          "Mot de passe modifié",
		"error.content_invalid":             "Champs obligatoires manquants",
		"email.contact_notify.subject":      "Nouveau message de contact : %s",
		"email.contact_notify.body_heading": "Un nouveau message a été envoyé depuis le site.",
	},
	LocaleEN: {
		"error.bad_request":                 "Bad request",
		"error.unauthenticated":             "Not authenticated",
		"error.invalid_credentials":         "Invalid email or password",
		"error.password_too_long":           "Password exceeds 72 bytes",
		"error.login_failed":                "Login failed",
		"error.internal":                    "Internal server error",
		"error.not_found":                   "Resource not found",
		"error.id_invalid":                  "Invalid identifier",
		"error.admin_not_found":             "Administrator not found",
		"error.admin_email_exists":          "An administrator already uses this email",
		"error.admin_last":                  "Cannot delete the last administrator",
		"error.admin_create_failed":         "Failed to create administrator",
		"error.admin_update_failed":         "Failed to update administrator",
		"error.admin_delete_failed":         "Failed to delete administrator",
		"error.admin_fetch_failed":          "Failed to fetch administrators",
		"error.password_required":           "Password is required",
		"error.email_invalid":               "Invalid email address",
		"error.fetch_failed":                "Fetch failed",
		"error.save_failed":                 "Save failed",
		"error.delete_failed":               "Delete failed",
		"error.formation_not_found":         "Program not found",
		"error.actualite_not_found":         "News item not found",
		"error.director_not_found":          "Director not found",
		"error.about_not_found":             "Content not found",
		"error.contact_info_not_found":      "Contact information not found",
		"error.contact_message_not_found":   "Message not found",
		"error.captcha_required":            "Verification code required",
		"error.captcha_invalid":             "Invalid verification code",
		"error.captcha_disabled":            "Verification code is disabled",
		"error.captcha_generate_failed":     "Failed to generate verification code",
		"error.file_missing":                "No file provided",
		"error.upload_invalid":              "Invalid image file",
		"error.upload_too_large":            "File too large",
		"error.upload_failed":               "Upload failed",
		"message.upload_success":            "Image uploaded successfully",
		"message.contact_message_received":  "Your message has been sent",
		"message.deleted":                   "Deleted successfully",
		"message.password_changed":          "Password changed",
		"error.content_invalid":             "Required fields are missing",
		"email.contact_notify.subject":      "New contact message: %s",
		"email.contact_notify.body_heading": "A new message was sent from the website.",
	},
}
