package accounts

import "github.com/cleared-dev/fecgen/internal/model"

// Suspense accounts used to disguise treasury movements.
var (
	SuspenseAccount        = model.Account{Num: "471000", Lib: "Compte d'attente"}
	PrepaidExpensesAccount = model.Account{Num: "486000", Lib: "Charges constatees d'avance"}
)

// DefaultChart returns the built-in French chart of accounts. Labels are
// plain ASCII so they can be written to a FEC text file as-is.
func DefaultChart() []model.Account {
	return []model.Account{
		// Class 1: capital.
		{Num: "101000", Lib: "Capital social"},
		{Num: "106100", Lib: "Reserve legale"},
		{Num: "106800", Lib: "Autres reserves"},
		{Num: "120000", Lib: "Resultat de l'exercice"},
		{Num: "131800", Lib: "Autres subventions d'investissement"},
		{Num: "151000", Lib: "Provisions pour risques"},
		{Num: "164000", Lib: "Emprunts aupres des etablissements de credit"},
		{Num: "165000", Lib: "Depots et cautionnements recus"},
		{Num: "168800", Lib: "Interets courus sur emprunts"},

		// Class 2: fixed assets.
		{Num: "201000", Lib: "Frais d'etablissement"},
		{Num: "203000", Lib: "Frais de recherche et developpement"},
		{Num: "205000", Lib: "Logiciels"},
		{Num: "207000", Lib: "Fonds commercial"},
		{Num: "211000", Lib: "Terrains"},
		{Num: "213100", Lib: "Constructions - Batiments"},
		{Num: "213500", Lib: "Installations generales, agencements"},
		{Num: "215400", Lib: "Materiel industriel"},
		{Num: "218100", Lib: "Installations generales, agencements divers"},
		{Num: "218200", Lib: "Materiel de transport"},
		{Num: "218300", Lib: "Materiel de bureau et informatique"},
		{Num: "218400", Lib: "Mobilier"},
		{Num: "231000", Lib: "Immobilisations corporelles en cours"},
		{Num: "280500", Lib: "Amort. logiciels"},
		{Num: "281310", Lib: "Amort. batiments"},
		{Num: "281350", Lib: "Amort. installations generales"},
		{Num: "281540", Lib: "Amort. materiel industriel"},
		{Num: "281810", Lib: "Amort. installations generales"},
		{Num: "281820", Lib: "Amort. materiel de transport"},
		{Num: "281830", Lib: "Amort. materiel de bureau"},
		{Num: "281840", Lib: "Amort. mobilier"},

		// Class 3: inventory.
		{Num: "311000", Lib: "Matieres premieres"},
		{Num: "321000", Lib: "Matieres consommables"},
		{Num: "350000", Lib: "Produits finis"},
		{Num: "355000", Lib: "Produits finis (groupe)"},
		{Num: "370000", Lib: "Marchandises"},
		{Num: "371000", Lib: "Stock de marchandises"},
		{Num: "397100", Lib: "Depreciation des stocks de marchandises"},

		// Class 4: third parties.
		{Num: "401000", Lib: "Fournisseurs"},
		{Num: "403000", Lib: "Fournisseurs - Effets a payer"},
		{Num: "404000", Lib: "Fournisseurs d'immobilisations"},
		{Num: "408100", Lib: "Fournisseurs - Factures non parvenues"},
		{Num: "408400", Lib: "Fournisseurs d'immobilisations - Factures non parvenues"},
		{Num: "409100", Lib: "Fournisseurs - Avances et acomptes verses"},
		{Num: "411000", Lib: "Clients"},
		{Num: "413000", Lib: "Clients - Effets a recevoir"},
		{Num: "416000", Lib: "Clients douteux"},
		{Num: "418100", Lib: "Clients - Factures a etablir"},
		{Num: "419100", Lib: "Clients - Avances et acomptes recus"},
		{Num: "421000", Lib: "Personnel - Remunerations dues"},
		{Num: "425000", Lib: "Personnel - Avances et acomptes"},
		{Num: "427000", Lib: "Personnel - Oppositions"},
		{Num: "428200", Lib: "Personnel - Conges payes"},
		{Num: "431000", Lib: "Securite sociale"},
		{Num: "437000", Lib: "Autres organismes sociaux"},
		{Num: "438200", Lib: "Charges sociales sur conges a payer"},
		{Num: "441000", Lib: "Etat - Impot sur les benefices"},
		{Num: "444000", Lib: "Etat - Impots sur les benefices"},
		{Num: "445510", Lib: "TVA a decaisser"},
		{Num: "445520", Lib: "TVA due intracommunautaire"},
		{Num: "445620", Lib: "TVA deductible sur immobilisations"},
		{Num: "445660", Lib: "TVA deductible sur ABS"},
		{Num: "445670", Lib: "TVA collectee"},
		{Num: "445710", Lib: "TVA collectee a payer"},
		{Num: "445860", Lib: "TVA sur factures non parvenues"},
		{Num: "445870", Lib: "TVA sur factures a etablir"},
		{Num: "447100", Lib: "Autres impots, taxes et versements assimiles"},
		{Num: "451000", Lib: "Groupe"},
		{Num: "455000", Lib: "Associes - Comptes courants"},
		{Num: "467000", Lib: "Autres comptes debiteurs ou crediteurs"},
		{Num: "468600", Lib: "Charges a payer"},
		{Num: "471000", Lib: "Compte d'attente"},
		{Num: "486000", Lib: "Charges constatees d'avance"},
		{Num: "487000", Lib: "Produits constates d'avance"},
		{Num: "491000", Lib: "Depreciation des comptes clients"},

		// Class 5: financial.
		{Num: "500000", Lib: "Valeurs mobilieres de placement"},
		{Num: "508000", Lib: "Interets courus sur VMP"},
		{Num: "511000", Lib: "Valeurs a l'encaissement"},
		{Num: "512000", Lib: "Banque principale"},
		{Num: "512100", Lib: "Banque secondaire"},
		{Num: "514000", Lib: "Cheques postaux"},
		{Num: "517000", Lib: "Autres organismes financiers"},
		{Num: "518100", Lib: "Interets courus a payer"},
		{Num: "518700", Lib: "Interets courus a recevoir"},
		{Num: "530000", Lib: "Caisse"},
		{Num: "580000", Lib: "Virements internes"},
		{Num: "590000", Lib: "Depreciation des valeurs mobilieres de placement"},

		// Class 6: expenses.
		{Num: "601000", Lib: "Achats de matieres premieres"},
		{Num: "602100", Lib: "Achats de matieres consommables"},
		{Num: "602200", Lib: "Achats de fournitures consommables"},
		{Num: "602260", Lib: "Achats d'emballages"},
		{Num: "606100", Lib: "Electricite, gaz, eau"},
		{Num: "606300", Lib: "Fournitures d'entretien et petit equipement"},
		{Num: "606400", Lib: "Fournitures administratives"},
		{Num: "606800", Lib: "Autres matieres et fournitures"},
		{Num: "607000", Lib: "Achats de marchandises"},
		{Num: "608500", Lib: "Frais accessoires d'achat"},
		{Num: "611000", Lib: "Sous-traitance generale"},
		{Num: "612000", Lib: "Redevances de credit-bail"},
		{Num: "613200", Lib: "Locations immobilieres"},
		{Num: "613500", Lib: "Locations mobilieres"},
		{Num: "614000", Lib: "Charges locatives"},
		{Num: "615200", Lib: "Entretien et reparations sur biens immobiliers"},
		{Num: "615500", Lib: "Entretien et reparations sur biens mobiliers"},
		{Num: "615600", Lib: "Maintenance"},
		{Num: "616000", Lib: "Primes d'assurance"},
		{Num: "618100", Lib: "Documentation generale"},
		{Num: "618500", Lib: "Frais de colloques, seminaires, conferences"},
		{Num: "621000", Lib: "Personnel exterieur a l'entreprise"},
		{Num: "622600", Lib: "Honoraires"},
		{Num: "622700", Lib: "Frais d'actes et de contentieux"},
		{Num: "623000", Lib: "Publicite, publications, relations publiques"},
		{Num: "623100", Lib: "Annonces et insertions"},
		{Num: "623400", Lib: "Cadeaux a la clientele"},
		{Num: "625100", Lib: "Voyages et deplacements"},
		{Num: "625600", Lib: "Missions"},
		{Num: "625700", Lib: "Receptions"},
		{Num: "626000", Lib: "Frais postaux et de telecommunications"},
		{Num: "627000", Lib: "Services bancaires et assimiles"},
		{Num: "628100", Lib: "Concours divers (cotisations...)"},
		{Num: "631000", Lib: "Impots, taxes et versements assimiles sur remunerations"},
		{Num: "633000", Lib: "Impots, taxes et versements assimiles sur remunerations (autres organismes)"},
		{Num: "635000", Lib: "Autres impots, taxes et versements assimiles"},
		{Num: "641000", Lib: "Remunerations du personnel"},
		{Num: "642000", Lib: "Remunerations des dirigeants"},
		{Num: "645000", Lib: "Charges de securite sociale et de prevoyance"},
		{Num: "647000", Lib: "Autres charges sociales"},
		{Num: "648000", Lib: "Autres charges de personnel"},
		{Num: "651000", Lib: "Redevances pour concessions, brevets, licences, etc."},
		{Num: "654000", Lib: "Pertes sur creances irrecouvrables"},
		{Num: "658000", Lib: "Charges diverses de gestion courante"},
		{Num: "661000", Lib: "Charges d'interets"},
		{Num: "664000", Lib: "Pertes sur cessions de valeurs mobilieres de placement"},
		{Num: "665000", Lib: "Escomptes accordes"},
		{Num: "666000", Lib: "Pertes de change"},
		{Num: "671000", Lib: "Charges exceptionnelles sur operations de gestion"},
		{Num: "675000", Lib: "Valeurs comptables des elements d'actif cedes"},
		{Num: "681110", Lib: "Dot. amort. sur immo. incorporelles"},
		{Num: "681120", Lib: "Dot. amort. sur immo. corporelles"},
		{Num: "681500", Lib: "Dot. provisions pour risques et charges d'exploitation"},
		{Num: "681740", Lib: "Dot. provisions sur creances"},
		{Num: "686500", Lib: "Dot. provisions pour risques et charges financiers"},
		{Num: "687000", Lib: "Dot. amort. et provisions exceptionnels"},
		{Num: "691000", Lib: "Participation des salaries aux resultats"},
		{Num: "695000", Lib: "Impots sur les benefices"},
		{Num: "698000", Lib: "Integration fiscale - Charges"},

		// Class 7: revenue.
		{Num: "701000", Lib: "Ventes de produits finis"},
		{Num: "706000", Lib: "Prestations de services"},
		{Num: "707000", Lib: "Ventes de marchandises"},
		{Num: "708500", Lib: "Ports et frais accessoires factures"},
		{Num: "709000", Lib: "Rabais, remises et ristournes accordes"},
		{Num: "713000", Lib: "Variation des stocks"},
		{Num: "720000", Lib: "Production immobilisee"},
		{Num: "740000", Lib: "Subventions d'exploitation"},
		{Num: "751000", Lib: "Redevances pour concessions, brevets, licences, etc."},
		{Num: "754000", Lib: "Ristournes percues des cooperatives"},
		{Num: "758000", Lib: "Produits divers de gestion courante"},
		{Num: "761000", Lib: "Produits de participations"},
		{Num: "762000", Lib: "Produits des autres immobilisations financieres"},
		{Num: "763000", Lib: "Revenus des autres creances"},
		{Num: "764000", Lib: "Revenus des valeurs mobilieres de placement"},
		{Num: "765000", Lib: "Escomptes obtenus"},
		{Num: "766000", Lib: "Gains de change"},
		{Num: "767000", Lib: "Produits nets sur cessions de valeurs mobilieres de placement"},
		{Num: "771000", Lib: "Produits exceptionnels sur operations de gestion"},
		{Num: "775000", Lib: "Produits des cessions d'elements d'actif"},
		{Num: "777000", Lib: "Quote-part des subventions d'investissement viree au resultat"},
		{Num: "781500", Lib: "Reprises sur provisions pour risques et charges d'exploitation"},
		{Num: "781740", Lib: "Reprises sur provisions sur creances"},
		{Num: "786500", Lib: "Reprises sur provisions pour risques et charges financiers"},
		{Num: "791000", Lib: "Transferts de charges d'exploitation"},
		{Num: "796000", Lib: "Transferts de charges financieres"},
		{Num: "797000", Lib: "Transferts de charges exceptionnelles"},
		{Num: "798000", Lib: "Integration fiscale - Produits"},
	}
}

// DefaultJournals returns the five standard journals.
func DefaultJournals() []model.Journal {
	return []model.Journal{
		{Code: model.JournalPurchases, Lib: "Achats"},
		{Code: model.JournalSales, Lib: "Ventes"},
		{Code: model.JournalBank, Lib: "Banque"},
		{Code: model.JournalCash, Lib: "Caisse"},
		{Code: model.JournalGeneral, Lib: "Operations diverses"},
	}
}

// DefaultAuxiliaries returns the auxiliary ledger directory keyed by the
// 3-digit control account prefix. Entities are listed in code order.
func DefaultAuxiliaries() map[string][]model.AuxiliaryEntity {
	return map[string][]model.AuxiliaryEntity{
		"401": {
			{Code: "F00001", Name: "DALKIA FRANCE"},
			{Code: "F00002", Name: "TELECOM SAS"},
			{Code: "F00003", Name: "FOURNITURES BUREAU DIRECT"},
			{Code: "F00004", Name: "PAPETERIE EXPRESS"},
			{Code: "F00005", Name: "BUREAU VERITAS"},
			{Code: "F00006", Name: "MAINTENANCE PRO"},
			{Code: "F00007", Name: "ASSURANCE GENERALI"},
			{Code: "F00008", Name: "TRANSPORT EXPRESS"},
			{Code: "F00009", Name: "NETTOYAGE SERVICE"},
			{Code: "F00010", Name: "ELECTRICITE DE FRANCE"},
		},
		"411": {
			{Code: "C00001", Name: "CLIENT ALPHA"},
			{Code: "C00002", Name: "CLIENT BETA"},
			{Code: "C00003", Name: "CLIENT GAMMA"},
			{Code: "C00004", Name: "CLIENT DELTA"},
			{Code: "C00005", Name: "CLIENT EPSILON"},
			{Code: "C00006", Name: "CLIENT ZETA"},
			{Code: "C00007", Name: "CLIENT ETA"},
			{Code: "C00008", Name: "CLIENT THETA"},
			{Code: "C00009", Name: "CLIENT IOTA"},
			{Code: "C00010", Name: "CLIENT KAPPA"},
		},
	}
}
