package locations

import "sort"

// Location is a single IMS forecast point.
type Location struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Location table from https://ims.gov.il/he/locations_info.
// 1-84 are cities, 200-278 national parks and tourist sites, 700+ additional sites.
var registry = map[int]string{
	1: "ירושלים", 2: "תל-אביב, חוף", 3: "חיפה", 4: "ראשון לציון",
	5: "פתח תקווה", 6: "אשדוד", 7: "נתניה", 8: "באר שבע",
	9: "בני ברק", 10: "חולון", 11: "רמת גן", 12: "אשקלון",
	13: "רחובות", 14: "בת ים", 15: "בית שמש", 16: "כפר סבא",
	17: "הרצליה", 18: "חדרה", 19: "מודיעין-מכבים-רעות", 20: "רמלה",
	21: "רעננה", 22: "מודיעין עילית", 23: "רהט", 24: "הוד השרון",
	25: "גבעתיים", 26: "קריית אתא", 27: "נהריה", 28: "ביתר עילית",
	29: "אום אל-פחם", 30: "קריית גת", 31: "אילת", 32: "ראש העין",
	33: "עפולה", 34: "נס ציונה", 35: "עכו", 36: "אלעד",
	37: "רמת השרון", 38: "כרמיאל", 39: "יבנה", 40: "טבריה",
	41: "טייבה", 42: "קריית מוצקין", 43: "שפרעם", 44: "נוף הגליל",
	45: "קריית ים", 46: "קריית ביאליק", 47: "קריית אונו", 48: "מעלה אדומים",
	49: "אור יהודה", 50: "צפת", 51: "נתיבות", 52: "דימונה",
	53: "טמרה", 54: "סח'נין", 55: "יהוד-מונוסון", 56: "באקה אל גרבייה",
	57: "אופקים", 58: "גבעת שמואל", 59: "טירה", 60: "ערד",
	61: "מגדל העמק", 62: "שדרות", 63: "ערבה", 64: "נשר",
	65: "קריית שמונה", 66: "יקנעם עילית", 67: "כפר קאסם", 68: "כפר יונה",
	69: "קלנסווה", 70: "קריית מלאכי", 71: "מעלות-תרשיחא", 72: "טירת כרמל",
	73: "אריאל", 74: "אור עקיבא", 75: "בית שאן", 76: "מצפה רמון",
	77: "לוד", 78: "נצרת", 79: "קצרין", 80: "עין גדי",
	81: "גני תקווה", 82: "באר יעקב", 83: "מע'אר", 84: "תל אביב-יפו",

	200: "מבצר נמרוד", 201: "נחל חרמון - בניאס", 202: "תל דן", 203: "נחל שניר",
	204: "חרשת טל", 205: "נחל עיון", 206: "חולה", 207: "תל חצור",
	208: "אכזיב", 209: "מבצר יחיעם", 210: "ברעם", 211: "נחל עמוד",
	212: "כורזים", 213: "כפר נחום", 214: "מג'רסה", 215: "בריכת המשושים",
	216: "יהודיה", 217: "גמלא", 218: "כורסי", 219: "חמת טבריה",
	220: "ארבל", 221: "עין אפק", 222: "ציפורי", 223: "חי בר כרמל",
	224: "פארק הכרמל", 225: "בית שערים", 226: "משמר הכרמל", 227: "נחל מערות",
	228: "דור הבונים", 229: "תל מגידו", 230: "כוכב הירדן", 231: "מעיין חרוד",
	232: "בית אלפא", 233: "גן השלושה", 235: "נחל תנינים", 236: "קיסריה",
	237: "תל דור", 238: "מרכז להצלת צבים", 239: "בית ינאי", 240: "אפולוניה",
	241: "אפק הירקון", 242: "פלמחים", 243: "קסטל", 244: "עין חמד",
	245: "עיר דויד", 246: "מערת הנטיפים", 248: "בית גוברין", 249: "שער הגיא",
	250: "מגדל צדק", 251: "עין חניה", 252: "סבסטיה", 253: "הר גריזים",
	254: "נבי סמואל", 255: "עין פרת", 256: "עין מבוע", 257: "קאסר אל-יהוד",
	258: "אכסניית השומרוני הטוב", 259: "מנזר אותימיוס", 261: "קומראן", 262: "עינות צוקים",
	263: "הרודיון", 264: "תל חברון", 267: "מצדה", 268: "תל ערד",
	269: "תל באר שבע", 270: "אשכול", 271: "ממשית", 272: "שבטה",
	273: "קבר בן גוריון", 274: "עין עבדת", 275: "עבדת", 277: "חי בר יטבתה",
	278: "חוף האלמוגים",

	702: "גלגל", 703: "מעלה גילבוע", 704: "רמון-חי רמון", 705: "נאות סמדר",
	706: "הקניון האדום", 707: "חצבה",
}

// Exists reports whether id is a known location.
func Exists(id int) bool {
	_, ok := registry[id]
	return ok
}

// Name returns the display name for id.
func Name(id int) (string, bool) {
	name, ok := registry[id]
	return name, ok
}

// All returns every location keyed by ID. The returned map is a copy.
func All() map[int]string {
	out := make(map[int]string, len(registry))
	for id, name := range registry {
		out[id] = name
	}
	return out
}

// Len returns the number of known locations.
func Len() int {
	return len(registry)
}

// Sorted returns every location ordered by ascending ID.
func Sorted() []Location {
	out := make([]Location, 0, len(registry))
	for id, name := range registry {
		out = append(out, Location{ID: id, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
