package va

// Profile is a VAProfile.
type Profile int32

const (
	ProfileNone                    Profile = -1
	ProfileMPEG2Simple             Profile = 0
	ProfileMPEG2Main               Profile = 1
	ProfileMPEG4Simple             Profile = 2
	ProfileMPEG4AdvancedSimple     Profile = 3
	ProfileMPEG4Main               Profile = 4
	ProfileH264Baseline            Profile = 5
	ProfileH264Main                Profile = 6
	ProfileH264High                Profile = 7
	ProfileVC1Simple               Profile = 8
	ProfileVC1Main                 Profile = 9
	ProfileVC1Advanced             Profile = 10
	ProfileH263Baseline            Profile = 11
	ProfileJPEGBaseline            Profile = 12
	ProfileH264ConstrainedBaseline Profile = 13
	ProfileVP8Version0_3           Profile = 14
	ProfileHEVCMain                Profile = 17
	ProfileHEVCMain10              Profile = 18
	ProfileVP9Profile0             Profile = 19
)

var profileNames = map[Profile]string{
	ProfileMPEG2Simple:             "VAProfileMPEG2Simple",
	ProfileMPEG2Main:               "VAProfileMPEG2Main",
	ProfileMPEG4Simple:             "VAProfileMPEG4Simple",
	ProfileMPEG4AdvancedSimple:     "VAProfileMPEG4AdvancedSimple",
	ProfileMPEG4Main:               "VAProfileMPEG4Main",
	ProfileJPEGBaseline:            "VAProfileJPEGBaseline",
	ProfileH263Baseline:            "VAProfileH263Baseline",
	ProfileH264ConstrainedBaseline: "VAProfileH264ConstrainedBaseline",
	ProfileH264Baseline:            "VAProfileH264Baseline",
	ProfileH264Main:                "VAProfileH264Main",
	ProfileH264High:                "VAProfileH264High",
	ProfileVC1Simple:               "VAProfileVC1Simple",
	ProfileVC1Main:                 "VAProfileVC1Main",
	ProfileVC1Advanced:             "VAProfileVC1Advanced",
	ProfileHEVCMain:                "VAProfileHEVCMain",
	ProfileHEVCMain10:              "VAProfileHEVCMain10",
	ProfileVP9Profile0:             "VAProfileVP9Profile0",
	ProfileVP8Version0_3:           "VAProfileVP8Version0_3",
}

// String returns the libva name of p, or "" for profiles without one.
func (p Profile) String() string {
	return profileNames[p]
}
